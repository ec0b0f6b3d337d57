package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, Sheet{
		Name:    "Timeline",
		Title:   "Attendance Timeline",
		Meta:    [][2]string{{"Employee", "Budi"}},
		Headers: []string{"Date", "Status", "Working Hours"},
		Rows: [][]interface{}{
			{"2025-03-10", "present", 9.5},
			{"2025-03-11", "absent", 0},
		},
		Footer: [][2]string{{"Total Working Hours", "9.50"}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Timeline"}, f.GetSheetList())

	rows, err := f.GetRows("Timeline")
	require.NoError(t, err)

	var nonEmpty [][]string
	for _, r := range rows {
		if len(r) > 0 {
			nonEmpty = append(nonEmpty, r)
		}
	}
	require.Len(t, nonEmpty, 6)
	assert.Equal(t, "Attendance Timeline", nonEmpty[0][0])
	assert.Equal(t, []string{"Employee", "Budi"}, nonEmpty[1])
	assert.Equal(t, []string{"Date", "Status", "Working Hours"}, nonEmpty[2])
	assert.Equal(t, []string{"2025-03-10", "present", "9.5"}, nonEmpty[3])
	assert.Equal(t, "absent", nonEmpty[4][1])
	assert.Equal(t, []string{"Total Working Hours", "9.50"}, nonEmpty[5])
}

func TestWriteXLSXRequiresSheet(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteXLSX(&buf))
}
