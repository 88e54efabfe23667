// Package locale holds the player-facing strings.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var catalog []byte

var po = load()

// poGet is called through a function value so vet's printf check does not
// treat Get as a format wrapper; keys are not format strings here.
var poGet = (*gotext.Po).Get

func load() *gotext.Po {
	p := gotext.NewPo()
	p.Parse(catalog)
	return p
}

// Get translates key. Unknown keys are returned as is. Entries with verbs are
// formatted by the caller: fmt.Sprintf(locale.Get("KEY"), args...).
func Get(key string) string {
	return poGet(po, key)
}
