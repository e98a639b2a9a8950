package assistant

import (
	"math/rand"
	"strings"
)

var rhymes = []string{
	"Twinkle, twinkle, little star, how I wonder what you are. Up above the world so high, like a diamond in the sky.",
	"Baa, baa, black sheep, have you any wool? Yes sir, yes sir, three bags full. One for the master, one for the dame, and one for the little boy who lives down the lane.",
	"Humpty Dumpty sat on a wall, Humpty Dumpty had a great fall. All the king's horses and all the king's men, couldn't put Humpty together again.",
	"Jack and Jill went up the hill to fetch a pail of water. Jack fell down and broke his crown, and Jill came tumbling after.",
	"Hey diddle diddle, the cat and the fiddle, the cow jumped over the moon. The little dog laughed to see such sport, and the dish ran away with the spoon.",
	"Mary had a little lamb, its fleece was white as snow. And everywhere that Mary went, the lamb was sure to go.",
	"Row, row, row your boat, gently down the stream. Merrily, merrily, merrily, merrily, life is but a dream.",
	"The itsy bitsy spider went up the water spout. Down came the rain and washed the spider out. Out came the sun and dried up all the rain, and the itsy bitsy spider went up the spout again.",
}

func respondRhyme(content string) string {
	pick := rhymes[rand.Intn(len(rhymes))]
	if strings.Contains(content, "another") || strings.Contains(content, "more") {
		return "Here's another rhyme for you: " + pick
	}
	return "Here's a lovely rhyme for you: " + pick
}
