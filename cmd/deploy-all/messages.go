package main

const helpTextTemplate = `NAME:
   {{.Name}}{{if .Usage}} - {{.Usage}}{{end}}

USAGE:
   deploy-all [options]{{if .Version}}{{if not .HideVersion}}

VERSION:
   {{.Version}}{{end}}{{end}}{{if .VisibleFlags}}

OPTIONS:
   {{range $index, $option := .VisibleFlags}}{{if $index}}
   {{end}}{{$option}}{{end}}{{end}}

EXIT STATUS:
   0  every network was attempted (individual networks may have failed, see the summary)
   1  the run could not complete (bad options, bad targets file, interrupted)
`
