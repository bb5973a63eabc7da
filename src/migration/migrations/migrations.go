package migrations

import (
	"fmt"

	"git.noga.studio/noga/site/src/migration/types"
)

var All = make(map[types.MigrationVersion]types.Migration)

func registerMigration(m types.Migration) {
	if _, exists := All[m.Version()]; exists {
		panic(fmt.Sprintf("duplicate migration version %v", m.Version()))
	}
	All[m.Version()] = m
}
