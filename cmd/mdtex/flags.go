// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBinding ties a command-line flag to a configuration key, so a flag
// given on the command line overrides the environment and the config file.
type flagBinding struct {
	flag string
	key  string
}

var persistentBindings = []flagBinding{
	{"log-level", keyLogLevel},
	{"log-format", keyLogFormat},
	{"max-nesting", keyMaxNesting},
	{"max-indent", keyMaxIndent},
	{"passthrough", keyPassthrough},
	{"history", keyHistory},
	{"history-db", keyHistoryDB},
}

// bindFlags binds each flag in bindings from fs into viper. A missing flag
// is a programming error.
func bindFlags(fs *pflag.FlagSet, bindings []flagBinding) {
	for _, b := range bindings {
		f := fs.Lookup(b.flag)
		if f == nil {
			panic(fmt.Sprintf("mdtex: no flag %q to bind to %s", b.flag, b.key))
		}
		if err := viper.BindPFlag(b.key, f); err != nil {
			panic(fmt.Sprintf("mdtex: binding --%s: %v", b.flag, err))
		}
	}
}

// changedFlags lists the flags set on the command line, for debug logging.
func changedFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.Visit(func(f *pflag.Flag) {
		names = append(names, f.Name+"="+f.Value.String())
	})
	return names
}
