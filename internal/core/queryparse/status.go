package queryparse

import "strings"

// detectStatus maps the first status synonym found in the text onto the
// entity's canonical status value. First rule in declaration order wins,
// even when a later rule's phrase is longer (see statusTables)
func detectStatus(lower string, e Entity) *QueryFilter {
	rules, ok := statusTables[e]
	if !ok {
		return nil
	}
	for _, rule := range rules {
		for _, phrase := range rule.phrases {
			if containsWord(lower, phrase) {
				return &QueryFilter{Field: "status", Operator: OpEq, Value: rule.value}
			}
		}
	}
	return nil
}

// containsWord reports whether phrase occurs in s on word boundaries, so
// "paid" does not fire inside "unpaid"
func containsWord(s, phrase string) bool {
	for from := 0; ; {
		idx := strings.Index(s[from:], phrase)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(phrase)
		startOK := idx == 0 || !isWordByte(s[idx-1])
		endOK := end == len(s) || !isWordByte(s[end])
		if startOK && endOK {
			return true
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
