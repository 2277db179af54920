package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.NotEmpty(t, tok.String(), "token %d missing string representation", tok)
	}
}

func TestLookupKw(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		val := LookupKw(tok.String())
		if tok.IsKeyword() {
			require.Equal(t, tok, val)
		} else {
			require.Equal(t, IDENT, val)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		val := LookupPunct(tok.String())
		if tok >= SEMI && tok <= EQEQ {
			require.Equal(t, tok, val)
		} else {
			require.Equal(t, ILLEGAL, val)
		}
	}
}

func TestCategory(t *testing.T) {
	require.Equal(t, "KEYWORD", IF.Category())
	require.Equal(t, "KEYWORD", RETURN.Category())
	require.Equal(t, "ID", IDENT.Category())
	require.Equal(t, "NUM", NUM.Category())
	require.Equal(t, "SYMBOL", EQEQ.Category())
	require.Equal(t, "END_OF_FILE", EOF.Category())
}

func TestGoString(t *testing.T) {
	require.Equal(t, "'=='", EQEQ.GoString())
	require.Equal(t, "if", IF.GoString())
}
