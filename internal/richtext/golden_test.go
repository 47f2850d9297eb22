package richtext

import (
	"testing"

	"github.com/goliatone/go-sitecontent/pkg/testsupport"
)

func TestParseGoldenMenu(t *testing.T) {
	source := testsupport.LoadFixture(t, "testdata/menu.md")
	testsupport.AssertGolden(t, "testdata/menu.golden.json", Parse(string(source)))
}
