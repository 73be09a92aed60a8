package effectiveness_test

import (
	"fmt"

	"github.com/matzehuels/pokedex/pkg/effectiveness"
)

func ref(name string) effectiveness.TypeRef {
	return effectiveness.TypeRef{Name: name}
}

func ExampleCalculate() {
	ground := effectiveness.DamageRelations{
		DoubleDamageFrom: []effectiveness.TypeRef{ref("water"), ref("grass"), ref("ice")},
		HalfDamageFrom:   []effectiveness.TypeRef{ref("poison"), ref("rock")},
		NoDamageFrom:     []effectiveness.TypeRef{ref("electric")},
	}
	flying := effectiveness.DamageRelations{
		DoubleDamageFrom: []effectiveness.TypeRef{ref("electric"), ref("ice"), ref("rock")},
		HalfDamageFrom:   []effectiveness.TypeRef{ref("bug"), ref("grass"), ref("fighting")},
		NoDamageFrom:     []effectiveness.TypeRef{ref("ground")},
	}

	res := effectiveness.Calculate([]effectiveness.DamageRelations{ground, flying})
	fmt.Println(res.Weaknesses)
	fmt.Println(res.Resistances)
	fmt.Println(res.Immunities)
	// Output:
	// [ice (x4) water (x2)]
	// [bug (x0.5) fighting (x0.5) poison (x0.5)]
	// [electric ground]
}
