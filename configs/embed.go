package configs

import _ "embed"

// ApplicationYAML is the default application.yml, used when no file is found on disk.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default messages.yml.
//
//go:embed messages.yml
var MessagesYAML []byte
