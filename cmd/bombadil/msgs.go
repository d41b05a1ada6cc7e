package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "A dotfile manager with templating and profile support"
	MsgConfigShort = "Print the fully merged configuration"
	MsgConfigLong  = "Config loads the root bombadil.toml, merges every declared import and prints the resulting configuration as TOML."
	MsgPathShort   = "Print the resolved configuration paths"
	MsgPathLong    = "Path prints the root configuration file location and the resolved dotfiles root directory."

	// Output formats
	MsgConfigPathFormat   = "config file:   %s\n"
	MsgDotfilesRootFormat = "dotfiles root: %s\n"
)
