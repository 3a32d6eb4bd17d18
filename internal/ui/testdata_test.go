package ui

import (
	"fmt"

	"github.com/atomicstack/treepick/internal/document"
)

func systemctlDoc() *document.Node {
	restart := func() *document.Node {
		return document.Object(document.F("restart", document.Strings("signal", "firefox", "gmail")))
	}
	return document.Object(
		document.F("systemctl", document.Object(
			document.F("--system", restart()),
			document.F("--user", restart()),
		)),
	)
}

func longDoc(n int) *document.Node {
	fields := make([]document.Field, n)
	for i := range fields {
		fields[i] = document.F(fmt.Sprintf("item%02d", i), document.Null())
	}
	return document.Object(fields...)
}
