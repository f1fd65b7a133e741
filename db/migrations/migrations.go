package migrations

import "embed"

// FS embeds the SQL migrations of the campaign session store. The
// golang-migrate library reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
