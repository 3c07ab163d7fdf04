package core

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Record is the summary of one pair that gets displayed and notified.
type Record struct {
	Name            string
	ContractAddress string
	Description     string
}

// Records keeps the analyzer output in the order of the source pairs.
type Records []Record

// String formats the records as a text table
func (r Records) String() string {
	if len(r) == 0 {
		return "No pairs returned."
	}

	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"#", "Token", "CA", "Description"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	for i, record := range r {
		table.Append([]string{
			strconv.Itoa(i + 1),
			record.Name,
			record.ContractAddress,
			record.Description,
		})
	}

	table.Render()
	return tableString.String()
}
