// Package application contains the use cases of the cheat sheets.
package application

import "github.com/iseif/devbelt/app"

type CheatsheetApplication struct {
	ListSheets app.Query[ListSheetsRequest, ListSheetsResponse]
	GetSheet   app.Query[GetSheetRequest, GetSheetResponse]
}
