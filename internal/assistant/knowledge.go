package assistant

import (
	"sort"
	"strings"
)

// rule is one entry of the static lookup table. Patterns are matched as
// plain substrings of the normalized content.
type rule struct {
	pattern  string
	response string
}

// knowledgeRules is sorted once at init by descending pattern length, which
// keeps "mauryan empire" ahead of "india" and every multi-word phrase ahead
// of its own substrings. The ordering invariant lives here, not in how the
// literals below happen to be arranged.
var knowledgeRules = buildKnowledgeRules()

// lookupKnowledge returns the answer for the longest matching phrase, or ""
// when no phrase matches.
func lookupKnowledge(content string) string {
	for _, r := range knowledgeRules {
		if strings.Contains(content, r.pattern) {
			return r.response
		}
	}
	return ""
}

func buildKnowledgeRules() []rule {
	rules := []rule{
		// Programming
		{"javascript", "JavaScript is a popular programming language primarily used for web development. It enables interactive web pages and is an essential part of web applications. It runs in web browsers and can also be used on servers with Node.js."},
		{"java", "Java is a high-level, object-oriented programming language known for its 'write once, run anywhere' philosophy using the Java Virtual Machine. It's widely used for enterprise applications, Android development, and large-scale systems."},
		{"python", "Python is a high-level, interpreted programming language known for its simple, readable syntax. It's widely used in web development, data science, artificial intelligence, automation, and scientific computing."},
		{"react", "React is a JavaScript library for building user interfaces, particularly web applications. It's known for its component-based architecture, virtual DOM, and efficient updates."},
		{"html", "HTML (HyperText Markup Language) is the standard markup language for creating web pages. It describes the structure and content of a webpage using elements and tags."},
		{"css", "CSS (Cascading Style Sheets) is a stylesheet language used to describe the presentation of HTML documents. It controls the layout, colors, fonts, and overall visual appearance of web pages."},
		{"node", "Node.js is a JavaScript runtime built on Chrome's V8 engine. It allows JavaScript to run outside the browser, enabling server-side development and scalable network applications."},

		// General knowledge
		{"science", "Science is the systematic study of the natural world through observation and experimentation. It includes fields like physics, chemistry, biology, and earth sciences."},
		{"technology", "Technology is the application of scientific knowledge for practical purposes. From smartphones to artificial intelligence, technology shapes our modern world."},
		{"history", "History is the study of past events, people, and civilizations. It helps us understand how societies evolved and appreciate cultural heritage."},
		{"geography", "Geography is the study of Earth's physical features, climate, and human activity. It helps us understand our world's diversity."},
		{"mathematics", "Mathematics is the study of numbers, quantities, shapes, and patterns. It's the foundation of science and technology. I can also help you with calculations!"},
		{"math", "Mathematics is the study of numbers, quantities, shapes, and patterns. It's the foundation of science and technology. I can also help you with calculations!"},
		{"art", "Art is human creative expression through mediums like painting, sculpture, music, and literature. It has been part of human civilization for thousands of years."},
		{"music", "Music is the art of arranging sounds in time to create compositions. It's universal across cultures and can express emotions, tell stories, and bring people together."},
		{"sports", "Sports are physical activities or games that involve competition and skill. They promote health, teamwork, and discipline."},
		{"food", "Food is any substance consumed to provide nutritional support for the body. Different cultures have unique cuisines reflecting their history, geography, and traditions."},
		{"weather", "Weather refers to atmospheric conditions including temperature, humidity, precipitation, and wind. Weather patterns are studied by meteorologists to help us plan and stay safe."},

		// Indian history
		{"indian history", "Indian history spans over 5,000 years, beginning with the Indus Valley Civilization. It includes ancient empires like Mauryan and Gupta, medieval kingdoms, Mughal rule, the British colonial period, and independence in 1947."},
		{"indian independence", "India gained independence from British rule on August 15, 1947, after a long struggle led by Mahatma Gandhi and many other freedom fighters. India became the world's largest democratic republic."},
		{"india", "India is the world's largest democracy and seventh-largest country, with over 1.4 billion people. It has a rich history spanning 5,000 years and is known for contributions in mathematics, science, philosophy, and art."},
		{"mahatma gandhi", "Mahatma Gandhi was the leader of India's independence movement against British rule. He advocated non-violent civil disobedience, led India to independence in 1947, and is known as the Father of the Nation."},
		{"gandhi", "Mahatma Gandhi was the leader of India's independence movement against British rule. He advocated non-violent civil disobedience, led India to independence in 1947, and is known as the Father of the Nation."},
		{"mauryan empire", "The Mauryan Empire was one of India's largest and most powerful empires, ruling from 322 to 185 BCE. Founded by Chandragupta Maurya, it reached its peak under Emperor Ashoka, who spread Buddhism across Asia."},
		{"mughal empire", "The Mughal Empire ruled most of the Indian subcontinent from 1526 to 1857. Founded by Babur, it reached its height under Akbar, and Shah Jahan built the Taj Mahal during its rule."},
		{"taj mahal", "The Taj Mahal is a white marble mausoleum built in Agra between 1632 and 1653 by Mughal Emperor Shah Jahan in memory of his wife Mumtaz Mahal. It's a UNESCO World Heritage Site."},
		{"chandragupta maurya", "Chandragupta Maurya founded the Mauryan Empire in 322 BCE and unified most of the Indian subcontinent with the help of his advisor Chanakya."},
		{"chanakya", "Chanakya was an ancient Indian teacher, philosopher, and royal advisor who authored the Arthashastra. He helped establish the Mauryan Empire and is considered one of India's greatest strategists."},
		{"ashoka", "Emperor Ashoka ruled the Mauryan Empire from 268 to 232 BCE. After the Kalinga War he embraced Buddhism and non-violence, spreading Buddhist teachings across Asia."},
		{"akbar", "Akbar the Great was the third Mughal emperor, ruling from 1556 to 1605. He is known for religious tolerance, administrative reforms, and patronage of arts and culture."},
		{"nalanda", "Nalanda was an ancient Buddhist monastery and university in Bihar, active from 427 to 1197 CE. It was one of the world's first residential universities and attracted scholars from across Asia."},
		{"bihar", "Bihar is an eastern Indian state with a rich history spanning over 3,000 years. It was home to great empires like Mauryan and Gupta and is the birthplace of Buddhism and Jainism."},
		{"buddha", "Gautama Buddha was born in Lumbini and attained enlightenment in Bodh Gaya. He founded Buddhism and taught the Four Noble Truths and the Eightfold Path."},

		// Scientists
		{"albert einstein", "Albert Einstein was a German-born theoretical physicist who developed the theory of relativity. His equation E=mc² is famous worldwide, and he won the Nobel Prize in Physics in 1921 for his explanation of the photoelectric effect."},
		{"einstein", "Albert Einstein was a German-born theoretical physicist who developed the theory of relativity. His equation E=mc² is famous worldwide, and he won the Nobel Prize in Physics in 1921 for his explanation of the photoelectric effect."},
		{"isaac newton", "Isaac Newton was an English mathematician, physicist, and astronomer who formulated the laws of motion and universal gravitation, discovered calculus, and wrote the Principia Mathematica."},
		{"newton", "Isaac Newton was an English mathematician, physicist, and astronomer who formulated the laws of motion and universal gravitation, discovered calculus, and wrote the Principia Mathematica."},
		{"marie curie", "Marie Curie was a Polish-French physicist and chemist who conducted pioneering research on radioactivity. She was the first person to win Nobel Prizes in two different sciences and discovered polonium and radium."},
		{"curie", "Marie Curie was a Polish-French physicist and chemist who conducted pioneering research on radioactivity. She was the first person to win Nobel Prizes in two different sciences and discovered polonium and radium."},
		{"charles darwin", "Charles Darwin was an English naturalist who proposed the theory of evolution by natural selection. His book On the Origin of Species revolutionized biology."},
		{"darwin", "Charles Darwin was an English naturalist who proposed the theory of evolution by natural selection. His book On the Origin of Species revolutionized biology."},
		{"galileo", "Galileo was an Italian astronomer and physicist who played a major role in the scientific revolution. He discovered Jupiter's four largest moons and is called the father of observational astronomy."},
		{"scientist", "Scientists study the natural world through observation and experimentation. Famous scientists include Albert Einstein, Isaac Newton, Marie Curie, Charles Darwin, and Galileo."},

		// World history
		{"alexander the great", "Alexander the Great (356-323 BC) was the King of Macedon who built a vast empire across three continents. Tutored by Aristotle, he led campaigns that conquered Persia and reached India."},
		{"alexander", "Alexander the Great was a king of the ancient Greek kingdom of Macedon and one of history's most successful military commanders. He created one of the largest empires of the ancient world by the age of 30."},
		{"abraham lincoln", "Abraham Lincoln was the 16th President of the United States, serving from 1861 until his assassination in 1865. He led the country during the Civil War and abolished slavery with the Emancipation Proclamation."},
		{"lincoln", "Abraham Lincoln was the 16th President of the United States, serving from 1861 until his assassination in 1865. He led the country during the Civil War and abolished slavery with the Emancipation Proclamation."},
		{"washington", "George Washington was the first President of the United States and a Founding Father. He served as commander-in-chief of the Continental Army and served two terms as president from 1789 to 1797."},
		{"president", "The first President of the United States was George Washington. He served from 1789 to 1797 and helped establish the foundations of American democracy."},
		{"martin luther king", "Martin Luther King Jr. was an American Baptist minister and the most visible leader of the civil rights movement from 1955 until his assassination in 1968, known for his 'I Have a Dream' speech."},
		{"king", "Martin Luther King Jr. was an American Baptist minister and the most visible leader of the civil rights movement from 1955 until his assassination in 1968, known for his 'I Have a Dream' speech."},
		{"world war", "World War I was fought from 1914 to 1918 and involved over 30 countries. World War II was fought from 1939 to 1945 and was the deadliest conflict in human history."},
		{"ancient egypt", "Ancient Egypt was a civilization of ancient North Africa, concentrated along the Nile River. It is known for its pyramids, pharaohs, hieroglyphics, and contributions to mathematics, medicine, and architecture."},
		{"egypt", "Ancient Egypt was a civilization of ancient North Africa, concentrated along the Nile River. It is known for its pyramids, pharaohs, hieroglyphics, and contributions to mathematics, medicine, and architecture."},
		{"roman empire", "The Roman Empire was one of the largest empires in history, ruling from 27 BC to 476 AD. The Romans made significant contributions to law, engineering, language, and governance."},
		{"rome", "The Roman Empire was one of the largest empires in history, ruling from 27 BC to 476 AD. The Romans made significant contributions to law, engineering, language, and governance."},
		{"columbus", "Christopher Columbus was an Italian explorer who completed four voyages across the Atlantic Ocean, reaching the Americas in 1492 while sailing for Spain."},
		{"renaissance", "The Renaissance was a period of cultural, artistic, political, and economic rebirth in Europe from the 14th to 17th centuries, producing figures like Leonardo da Vinci and Michelangelo."},
		{"industrial revolution", "The Industrial Revolution was the transition to new manufacturing processes from about 1760 to 1840. It began in Britain and transformed agricultural societies into industrial ones."},
		{"civil war", "The American Civil War was fought from 1861 to 1865 between the Northern and Southern states, resulting in the abolition of slavery and preservation of the United States."},

		// Conversational
		{"hello", "Hello! I'm your virtual assistant. How can I help you today?"},
		{"hi", "Hello! I'm your virtual assistant. How can I help you today?"},
		{"how are you", "I'm doing great, thank you for asking! I'm here to assist you with any questions you have."},
		{"thank", "You're welcome! Is there anything else I can help you with?"},
		{"bye", "Goodbye! Feel free to come back anytime you have questions."},
		{"reminder", "I can help you set reminders! Just tell me what you want to remember and when. For example, 'remind me to call mom at 5 pm'. I'll remember it and remind you at the right time!"},
		{"remind", "I can help you set reminders! Just tell me what you want to remember and when. For example, 'remind me to call mom at 5 pm'. I'll remember it and remind you at the right time!"},
		{"remember", "I can help you remember things! Just tell me what you want to remember, and you can ask me 'what did I tell you to remember' to see all your reminders."},
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].pattern) > len(rules[j].pattern)
	})
	return rules
}
