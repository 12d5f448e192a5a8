package clientdist

import _ "embed"

// TabsJS is the thin client served at "/_tabs/client.js".
//
//go:embed tabs.js
var TabsJS []byte
