// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidArgumentCountId Id = iota + 1
	InvalidCharacterId
	InvalidLengthId
	ChecksumMismatchId
	ConfigLoadFailedId
	InvalidOutputFormatId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using a glamour style
// ("dark", "light", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const checkDigitWiki HttpLink = "https://en.wikibooks.org/wiki/Vehicle_Identification_Numbers_(VIN_codes)/Check_digit"

var (
	render = glamour.Render

	invalidArgumentCountIssue = &Issue{
		id: InvalidArgumentCountId,
		mdMsg: `
# Exactly one VIN is required!

The checker validates a single Vehicle Identification Number per run.

## Usage
~~~
$ vin 1HGCM82633A004352
~~~

## Things you can try:
- Pass the VIN as one argument, without spaces inside it
- Run one command per VIN when checking a list`,
	}

	invalidCharacterIssue = &Issue{
		id: InvalidCharacterId,
		mdMsg: `
# The checksum could not be computed!

Every VIN character must be a digit 0-9 or a letter from A to Z.
The letters I, O and Q are never used, so they have no checksum value.

## Things you can try:
- Replace I with 1, and O or Q with 0, if the VIN was copied by hand
- Remove dashes and spaces inside the VIN`,
		extLinks: []HttpLink{checkDigitWiki},
	}

	invalidLengthIssue = &Issue{
		id: InvalidLengthId,
		mdMsg: `
# A VIN has exactly 17 characters!

Vehicles built since 1981 carry a 17 character VIN. The check digit is only
defined for that length.

## Things you can try:
- Check for missing or doubled characters
- Older vehicles may use a shorter, manufacturer specific serial number`,
		extLinks: []HttpLink{checkDigitWiki},
	}

	checksumMismatchIssue = &Issue{
		id: ChecksumMismatchId,
		mdMsg: `
# The check digit does not match!

The 9th character is a check digit computed from the other 16. A mismatch
usually means a typing error somewhere in the VIN.

## Things you can try:
- Compare the VIN with the one printed on the vehicle or its title
- Inspect the computation:
~~~
$ vin explain <VIN>
~~~`,
		extLinks: []HttpLink{checkDigitWiki},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.
Built-in defaults were used instead.

## Things you can try:
- Show the file location:
~~~
$ vin config path
~~~
- Recreate a default configuration:
~~~
$ vin config init
~~~`,
	}

	invalidOutputFormatIssue = &Issue{
		id: InvalidOutputFormatId,
		mdMsg: `
# Unknown output format!

Supported formats are text, json, toml and cue.

## Things you can try:
~~~
$ vin --output json 1HGCM82633A004352
~~~`,
	}

	issues = map[Id]*Issue{
		invalidArgumentCountIssue.Id(): invalidArgumentCountIssue,
		invalidCharacterIssue.Id():     invalidCharacterIssue,
		invalidLengthIssue.Id():        invalidLengthIssue,
		checksumMismatchIssue.Id():     checksumMismatchIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidOutputFormatIssue.Id():  invalidOutputFormatIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id - b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
