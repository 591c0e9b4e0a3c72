package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreProcessChainOrdersMostRecentlyRegisteredFirst(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())
	b := New(tr, stubWidget{}, tr.Root(), a)

	RegisterPreProcess(tr, a)
	RegisterPreProcess(tr, b)

	chain := PreProcessChain(tr)
	require.Len(t, chain, 2)
	assert.Equal(t, b, chain[0])
	assert.Equal(t, a, chain[1])
}

func TestRegisterPreProcessIsIdempotent(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())

	RegisterPreProcess(tr, a)
	RegisterPreProcess(tr, a)

	assert.Len(t, PreProcessChain(tr), 1)
}

func TestUnregisterPreProcessRemovesMiddleLink(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())
	b := New(tr, stubWidget{}, tr.Root(), a)
	c := New(tr, stubWidget{}, tr.Root(), b)

	RegisterPreProcess(tr, a)
	RegisterPreProcess(tr, b)
	RegisterPreProcess(tr, c)

	UnregisterPreProcess(tr, b)

	chain := PreProcessChain(tr)
	require.Len(t, chain, 2)
	assert.Equal(t, c, chain[0])
	assert.Equal(t, a, chain[1])
}

func TestDropUnregistersFromBothChains(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())

	RegisterPreProcess(tr, a)
	RegisterPostProcess(tr, a)

	Drop(tr, a)

	assert.Empty(t, PreProcessChain(tr))
	assert.Empty(t, PostProcessChain(tr))
}

func TestPostProcessChainIndependentOfPreProcess(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())
	b := New(tr, stubWidget{}, tr.Root(), a)

	RegisterPreProcess(tr, a)
	RegisterPostProcess(tr, b)

	preChain := PreProcessChain(tr)
	postChain := PostProcessChain(tr)
	require.Len(t, preChain, 1)
	require.Len(t, postChain, 1)
	assert.Equal(t, a, preChain[0])
	assert.Equal(t, b, postChain[0])
}
