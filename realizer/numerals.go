package realizer

import (
	"strconv"
	"strings"
)

var (
	unitsEnglish = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tensEnglish  = [...]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

	unitsFrench = [...]string{"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	tensFrench  = [...]string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante"}
)

// cardinal spells out n in given language. Numbers outside [0; 99] are written with digits.
func cardinal(lang Language, n int, gender Gender) string {
	if n < 0 || n > 99 {
		return strconv.Itoa(n)
	}
	switch lang {
	case French:
		word := cardinalFrench(n)
		if gender == FEMININE && (word == "un" || strings.HasSuffix(word, " un") || strings.HasSuffix(word, "-un")) {
			word += "e"
		}
		return word
	default:
		return cardinalEnglish(n)
	}
}

func cardinalEnglish(n int) string {
	if n < 20 {
		return unitsEnglish[n]
	}
	tens, units := n/10, n%10
	if units == 0 {
		return tensEnglish[tens]
	}
	return tensEnglish[tens] + "-" + unitsEnglish[units]
}

func cardinalFrench(n int) string {
	switch {
	case n < 20:
		return unitsFrench[n]
	case n < 70:
		tens, units := n/10, n%10
		switch units {
		case 0:
			return tensFrench[tens]
		case 1:
			return tensFrench[tens] + " et un"
		default:
			return tensFrench[tens] + "-" + unitsFrench[units]
		}
	case n < 80:
		if n == 71 {
			return "soixante et onze"
		}
		return "soixante-" + unitsFrench[n-60]
	case n == 80:
		return "quatre-vingts"
	default:
		return "quatre-vingt-" + unitsFrench[n-80]
	}
}
