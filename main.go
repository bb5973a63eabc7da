package main

import (
	_ "git.noga.studio/noga/site/src/assets"
	_ "git.noga.studio/noga/site/src/migration"
	"git.noga.studio/noga/site/src/website"
)

func main() {
	website.WebsiteCommand.Execute()
}
