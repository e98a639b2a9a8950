package assistant

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var mathExprRe = regexp.MustCompile(`\d+\s*(plus|add|minus|subtract|multiplied by|multiply|times|divided by|divide|x|\+|-|\*|/)\s*\d+`)

func isMathExpression(s string) bool {
	return mathExprRe.MatchString(s)
}

// operatorWords rewrites spoken operators to symbols. Longer phrases come
// first so "divided by" never half-matches as "divide".
var operatorWords = strings.NewReplacer(
	"divided by", "/",
	"to the power of", "**",
	"multiplied by", "*",
	"plus", "+",
	"minus", "-",
	"times", "*",
	"multiply", "*",
	"divide", "/",
	"squared", "**2",
	"cubed", "**3",
)

var (
	numberRe   = regexp.MustCompile(`\d+`)
	operatorRe = regexp.MustCompile(`[+\-*/]`)
)

// buildExpression rebuilds a plain left-to-right expression from the
// numbers and operator symbols found in the phrase, each kept in original
// order. Operators beyond len(numbers)-1 are discarded.
func buildExpression(phrase string) (string, bool) {
	expr := operatorWords.Replace(phrase)

	numbers := numberRe.FindAllString(expr, -1)
	if len(numbers) < 2 {
		return "", false
	}
	operators := operatorRe.FindAllString(expr, -1)

	var b strings.Builder
	b.WriteString(numbers[0])
	for i := 0; i < len(operators) && i < len(numbers)-1; i++ {
		b.WriteString(operators[i])
		b.WriteString(numbers[i+1])
	}
	return b.String(), true
}

// evaluate is the restricted arithmetic evaluator: digits, whitespace and
// + - * / ( ) only, evaluated strictly left to right with no precedence.
// Any other character is ErrUnsafeExpression; a malformed token stream,
// division by zero, or a non-finite result is an ordinary error.
func evaluate(expr string) (float64, error) {
	for _, r := range expr {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/':
		case r == '(' || r == ')':
		case r == ' ' || r == '\t':
		default:
			return 0, ErrUnsafeExpression
		}
	}

	tokens := tokenize(expr)
	if len(tokens) == 0 || len(tokens)%2 == 0 {
		return 0, fmt.Errorf("malformed expression %q", expr)
	}

	acc, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed expression %q", expr)
	}
	for i := 1; i < len(tokens); i += 2 {
		n, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed expression %q", expr)
		}
		switch tokens[i] {
		case "+":
			acc += n
		case "-":
			acc -= n
		case "*":
			acc *= n
		case "/":
			if n == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			acc /= n
		default:
			return 0, fmt.Errorf("malformed expression %q", expr)
		}
	}

	if math.IsNaN(acc) || math.IsInf(acc, 0) {
		return 0, fmt.Errorf("non-finite result")
	}
	return acc, nil
}

func tokenize(expr string) []string {
	var tokens []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(expr) && expr[j] >= '0' && expr[j] <= '9' {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j
		default:
			// operators; parens land here too and fail evaluation
			tokens = append(tokens, string(c))
			i++
		}
	}
	return tokens
}

const (
	mathClarification = "I can help with mathematical calculations! Please provide a clear mathematical expression like 'what is 2 plus 2' or 'calculate 10 times 5'."
	mathFailure       = "I couldn't calculate that. Please make sure your mathematical expression is valid."
)

// respondMath never fails past its own boundary: every extraction or
// evaluation problem becomes a clarification message.
func respondMath(content string) string {
	expr, ok := buildExpression(content)
	if !ok {
		return mathClarification
	}
	result, err := evaluate(expr)
	if err != nil {
		return mathFailure
	}
	if result == math.Trunc(result) {
		return fmt.Sprintf("The answer is %d. That was %s equals %d.", int64(result), expr, int64(result))
	}
	return fmt.Sprintf("The answer is %.2f. That was approximately %.2f.", result, result)
}
