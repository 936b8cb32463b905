package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/shockphys/goshock/materials"
)

func TestMixDeckParse(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Cu loaded PMMA
UpMin: 0.
UpMax: 6.
NumPoints: 100
Components:
  - Material: Copper
    VolumeFraction: 0.3
  - Name: MyBinder
    Rho0: 1.2
    C0: 2.7
    S: 1.49
    VolumeFraction: 0.7
`)
	var deck MixDeck
	if err = deck.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, deck.Title, "Cu loaded PMMA")
	assert.Equal(t, deck.NumPoints, 100)
	assert.Equal(t, len(deck.Components), 2)
	assert.Equal(t, deck.Components[0].Material, "Copper")
	assert.Equal(t, deck.Components[1].Rho0, 1.2)
	deck.Print()
	assert.Equal(t, deck.UpMax, 6.)

	comps, err := ResolveComponents(materials.Builtin(), deck.Components)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, comps[0].EOS.Rho0, 8.93)
	assert.Equal(t, comps[1].EOS.Name, "MyBinder")
}

func TestResolveUnknownMaterial(t *testing.T) {
	deck := []DeckComponent{{Material: "Unobtainium", VolumeFraction: 1}}
	_, err := ResolveComponents(materials.Builtin(), deck)
	if err == nil {
		t.Fatal("expected an error for an unknown material")
	}
}
