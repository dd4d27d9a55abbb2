package utils

import (
	"fmt"
	"testing"
)

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestNameVariations(t *testing.T) {
	variants := NameVariations("KokShiek Wong")
	fmt.Printf("NameVariations(%q) = %v\n", "KokShiek Wong", variants)

	// CamelCase的名要展开成两个首字母
	for _, want := range []string{"kokshiek wong", "wong kokshiek", "k wong", "ks wong", "wong ks"} {
		if !contains(variants, want) {
			t.Errorf("missing variant %q in %v", want, variants)
		}
	}
}

func TestNameVariationsWithMiddle(t *testing.T) {
	variants := NameVariations("Jane Marie Doe")
	fmt.Printf("NameVariations(%q) = %v\n", "Jane Marie Doe", variants)

	for _, want := range []string{"jane marie doe", "doe jane marie", "j doe", "jm doe", "doe jm", "dj marie"} {
		if !contains(variants, want) {
			t.Errorf("missing variant %q in %v", want, variants)
		}
	}
}

func TestNameVariationsEdgeCases(t *testing.T) {
	if got := NameVariations(""); got != nil {
		t.Errorf("NameVariations(\"\") = %v, want nil", got)
	}

	single := NameVariations("Plato")
	if len(single) != 1 || single[0] != "plato" {
		t.Errorf("NameVariations(single) = %v, want [plato]", single)
	}

	// 变体不重复
	variants := NameVariations("Jane Doe")
	seen := make(map[string]bool)
	for _, v := range variants {
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
}
