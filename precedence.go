package fastpath

// Operator tiers for binary and logical expressions. A lower tier binds
// more loosely. Operators sharing a tier are left-associative except "**",
// which sits alone in the top tier.
var precedence = func() map[string]int {
	tiers := [][]string{
		{"??"},
		{"||"},
		{"&&"},
		{"|"},
		{"^"},
		{"&"},
		{"==", "===", "!=", "!=="},
		{"<", ">", "<=", ">=", "in", "instanceof"},
		{">>", "<<", ">>>"},
		{"+", "-"},
		{"*", "/", "%"},
		{"**"},
	}
	table := map[string]int{}
	for tier, ops := range tiers {
		for _, op := range ops {
			table[op] = tier
		}
	}
	return table
}()

// Precedence returns the tier of a binary or logical operator. The second
// result is false for operators not in the table.
func Precedence(op string) (int, bool) {
	tier, ok := precedence[op]
	return tier, ok
}
