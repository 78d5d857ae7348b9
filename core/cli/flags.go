/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type multiFlag struct {
	name   string
	usage  string
	value  any
	defVal any
}

var flags []multiFlag

type onOffFlag struct {
	val *bool
}

func (f *onOffFlag) String() string {
	if f.val == nil {
		return "off"
	}
	if *f.val {
		return "on"
	}
	return "off"
}

func (f *onOffFlag) Set(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "on", "1", "true":
		*f.val = true
	case "off", "0", "false":
		*f.val = false
	default:
		return fmt.Errorf("invalid value %q: use on/off, 1/0, or true/false", value)
	}
	return nil
}

// IsBoolFlag lets "-strict" be given without a value.
func (f *onOffFlag) IsBoolFlag() bool { return true }

func flagTable(opts *CliOptions) []multiFlag {
	return []multiFlag{
		{name: "u,url", usage: "Target URI (example: https://user@cms.example.com:8443/login?next=/)", value: &opts.URL},
		{name: "l,uris-file", usage: "File containing list of target URIs (one per line)", value: &opts.URIsFile},
		{name: "shf,substitute-hosts-file", usage: "File containing a list of hosts (or URLs) that replace the host of the target URI, one output per host", value: &opts.SubstituteHostsFile},
		{name: "i,inspect", usage: "Print every component of each input URI", value: &opts.Inspect, defVal: false},
		{name: "as,append-scheme", usage: "Add a scheme when the URI has none (example: -as https)", value: &opts.AppendScheme},
		{name: "rs,replace-scheme", usage: "Replace the scheme of the URI", value: &opts.ReplaceScheme},
		{name: "ds,drop-scheme", usage: "Remove the scheme and its separator", value: &opts.DropScheme, defVal: false},
		{name: "sep,scheme-separator", usage: "Separator written after a new scheme (\"://\" or \":\")", value: &opts.SchemeSeparator, defVal: "://"},
		{name: "aa,append-authority", usage: "Add an authority when the URI has none (example: -aa user@host:8080)", value: &opts.AppendAuthority},
		{name: "ra,replace-authority", usage: "Replace the whole authority (userinfo, host and port)", value: &opts.ReplaceAuthority},
		{name: "rh,replace-host", usage: "Replace only the host, keeping userinfo and port", value: &opts.ReplaceHost},
		{name: "ap,append-path", usage: "Append text to the path (example: -ap /admin)", value: &opts.AppendPath},
		{name: "rp,replace-path", usage: "Replace the path", value: &opts.ReplacePath},
		{name: "aq,append-query", usage: "Append query params (example: -aq \"debug=1&cb=x\")", value: &opts.AppendQuery},
		{name: "rq,replace-query", usage: "Replace the query with these params", value: &opts.ReplaceQuery},
		{name: "dq,drop-query", usage: "Remove the query", value: &opts.DropQuery, defVal: false},
		{name: "qd,query-delimiter", usage: "Delimiter used when appending query params (\"&\" or \";\")", value: &opts.QueryDelimiter, defVal: "&"},
		{name: "af,append-fragment", usage: "Append a fragment (text is added after an existing fragment)", value: &opts.AppendFragment},
		{name: "strict", usage: "Report outputs that are not valid RFC 3986 URIs as errors (on/off, 1/0)",
			value: &onOffFlag{val: &opts.Strict}, defVal: "off"},
		{name: "t,plan-token", usage: "Replay the edits packed in a plan token (example: -t xyzplantoken)", value: &opts.PlanToken},
		{name: "pt,print-token", usage: "Print the plan token of the given edits", value: &opts.PrintToken, defVal: false},
		{name: "o,output", usage: "Write the output URIs to this file (one per line)", value: &opts.Output},
		{name: "w,workers", usage: "Number of concurrent workers", value: &opts.Workers, defVal: 10},
		{name: "v,verbose", usage: "Verbose output", value: &opts.Verbose, defVal: false},
		{name: "d,debug", usage: "Debug output", value: &opts.Debug, defVal: false},
	}
}

func printFlagUsage(w io.Writer, f multiFlag) {
	names := strings.Split(f.name, ",")
	if len(names) > 1 {
		fmt.Fprintf(w, "  -%s, -%s\n", names[0], names[1])
	} else {
		fmt.Fprintf(w, "  -%s\n", names[0])
	}

	if f.defVal != nil {
		fmt.Fprintf(w, "        %s (Default: %v)\n", f.usage, f.defVal)
	} else {
		fmt.Fprintf(w, "        %s\n", f.usage)
	}
}

func parseFlags(args []string) (*CliOptions, error) {
	opts := &CliOptions{}
	flags = flagTable(opts)

	fs := flag.NewFlagSet("urisplice", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	// Set up custom usage
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "URISplice\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		for _, f := range flags {
			printFlagUsage(os.Stderr, f)
		}
	}

	// Register all flags
	for _, f := range flags {
		for _, name := range strings.Split(f.name, ",") {
			name = strings.TrimSpace(name)
			switch v := f.value.(type) {
			case *string:
				if def, ok := f.defVal.(string); ok {
					fs.StringVar(v, name, def, f.usage)
				} else {
					fs.StringVar(v, name, "", f.usage)
				}
			case *int:
				if def, ok := f.defVal.(int); ok {
					fs.IntVar(v, name, def, f.usage)
				} else {
					fs.IntVar(v, name, 0, f.usage)
				}
			case *bool:
				if def, ok := f.defVal.(bool); ok {
					fs.BoolVar(v, name, def, f.usage)
				} else {
					fs.BoolVar(v, name, false, f.usage)
				}
			case flag.Value:
				fs.Var(v, name, f.usage)
			}
		}
	}

	// Parse flags
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Set defaults and validate
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}
