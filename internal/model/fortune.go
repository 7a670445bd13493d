package model

// FortuneLevel is one of the six omikuji tiers.
type FortuneLevel string

const (
	GreatBlessing  FortuneLevel = "大吉"
	MiddleBlessing FortuneLevel = "中吉"
	SmallBlessing  FortuneLevel = "小吉"
	FutureBlessing FortuneLevel = "末吉"
	Curse          FortuneLevel = "凶"
	GreatCurse     FortuneLevel = "大凶"
)

// FortuneLevels lists all tiers from best to worst.
var FortuneLevels = []FortuneLevel{
	GreatBlessing,
	MiddleBlessing,
	SmallBlessing,
	FutureBlessing,
	Curse,
	GreatCurse,
}

// Valid reports whether l is one of the six tiers.
func (l FortuneLevel) Valid() bool {
	return l.Rank() >= 0
}

// Rank returns the position of l in FortuneLevels (0 = best), or -1.
func (l FortuneLevel) Rank() int {
	for i, v := range FortuneLevels {
		if v == l {
			return i
		}
	}
	return -1
}

// Category is a life domain rated on every draw.
type Category string

const (
	Overall Category = "総合運"
	Love    Category = "恋愛運"
	Work    Category = "仕事運"
	Money   Category = "金運"
	Health  Category = "健康運"
)

// Categories lists all categories in display order.
var Categories = []Category{Overall, Love, Work, Money, Health}

// Rating is a symbolic grade for a single category.
type Rating string

const (
	RatingExcellent Rating = "◎"
	RatingGood      Rating = "○"
	RatingFair      Rating = "△"
	RatingPoor      Rating = "×"
)

// Ratings lists all grades from best to worst.
var Ratings = []Rating{RatingExcellent, RatingGood, RatingFair, RatingPoor}

// Valid reports whether r is one of the four grades.
func (r Rating) Valid() bool {
	for _, v := range Ratings {
		if v == r {
			return true
		}
	}
	return false
}
