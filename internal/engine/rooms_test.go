package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himtourism/homestay-portal/internal/models"
)

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func assertCapacityInvariant(t *testing.T, c *RoomConfiguration) {
	t.Helper()
	rows := c.Rows()
	assert.LessOrEqual(t, models.TotalRooms(rows), MaxRoomsAllowed)
	assert.LessOrEqual(t, models.TotalBeds(rows), MaxBedsAllowed)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Quantity, 0)
		assert.GreaterOrEqual(t, r.BedsPerRoom, 1)
		assert.LessOrEqual(t, r.BedsPerRoom, MaxBedsPerRoom)
	}
}

func TestNewRoomConfiguration_SeedsEmptySingleRow(t *testing.T) {
	c := NewRoomConfiguration()
	rows := c.Rows()

	require.Len(t, rows, 1)
	assert.Equal(t, models.RoomTypeSingle, rows[0].RoomType)
	assert.Equal(t, 0, rows[0].Quantity)
	assert.Equal(t, 1, rows[0].BedsPerRoom)
	assert.NotEmpty(t, rows[0].ID)
}

func TestAddRow_DefaultBedCounts(t *testing.T) {
	c := NewRoomConfiguration()

	require.True(t, c.AddRow(models.RoomTypeDouble))
	require.True(t, c.AddRow(models.RoomTypeSuite))

	byType := map[models.RoomType]models.RoomRow{}
	for _, r := range c.Rows() {
		byType[r.RoomType] = r
	}
	assert.Equal(t, 1, byType[models.RoomTypeSingle].BedsPerRoom)
	assert.Equal(t, 2, byType[models.RoomTypeDouble].BedsPerRoom)
	assert.Equal(t, 4, byType[models.RoomTypeSuite].BedsPerRoom)
}

func TestAddRow_RejectsDuplicatesAndUnknownTypes(t *testing.T) {
	c := NewRoomConfiguration()

	assert.False(t, c.AddRow(models.RoomTypeSingle), "duplicate type")
	assert.False(t, c.AddRow(models.RoomType("dormitory")), "unknown type")

	require.True(t, c.AddRow(models.RoomTypeDouble))
	require.True(t, c.AddRow(models.RoomTypeSuite))
	assert.False(t, c.AddRow(models.RoomTypeDouble), "all three types present")
	assert.Len(t, c.Rows(), 3)
}

func TestUpdateRow_ClampsQuantityToRoomCap(t *testing.T) {
	c := NewRoomConfiguration()
	rowID := c.Rows()[0].ID

	require.True(t, c.UpdateRow(rowID, RoomRowPatch{Quantity: intPtr(MaxRoomsAllowed + 1)}))
	assert.Equal(t, MaxRoomsAllowed, c.Rows()[0].Quantity, "one over the cap clamps down")

	require.True(t, c.UpdateRow(rowID, RoomRowPatch{Quantity: intPtr(MaxRoomsAllowed)}))
	assert.Equal(t, MaxRoomsAllowed, c.Rows()[0].Quantity, "exactly the cap passes unchanged")

	require.True(t, c.UpdateRow(rowID, RoomRowPatch{Quantity: intPtr(-3)}))
	assert.Equal(t, 0, c.Rows()[0].Quantity, "negative quantity clamps to zero")
}

func TestUpdateRow_BedCapBindsBeforeRoomCap(t *testing.T) {
	c := NewRoomConfiguration()
	rowID := c.Rows()[0].ID

	// 4 rooms x 4 beds would be 16 beds; the 12-bed ceiling forces 3 beds per room.
	require.True(t, c.UpdateRow(rowID, RoomRowPatch{Quantity: intPtr(4), BedsPerRoom: intPtr(4)}))
	row := c.Rows()[0]
	assert.Equal(t, 4, row.Quantity)
	assert.Equal(t, 3, row.BedsPerRoom)
	assert.Equal(t, 12, c.TotalBeds())
}

func TestUpdateRow_OtherRowsConstrainCapacity(t *testing.T) {
	c := NewRoomConfiguration()
	singleID := c.Rows()[0].ID
	require.True(t, c.UpdateRow(singleID, RoomRowPatch{Quantity: intPtr(4), BedsPerRoom: intPtr(2)}))

	require.True(t, c.AddRow(models.RoomTypeDouble))
	var doubleID string
	for _, r := range c.Rows() {
		if r.RoomType == models.RoomTypeDouble {
			doubleID = r.ID
		}
	}

	// 4 single rooms use 8 beds; only 4 beds and 2 rooms remain.
	require.True(t, c.UpdateRow(doubleID, RoomRowPatch{Quantity: intPtr(5), BedsPerRoom: intPtr(2)}))
	for _, r := range c.Rows() {
		if r.RoomType == models.RoomTypeDouble {
			assert.Equal(t, 2, r.Quantity)
			assert.Equal(t, 2, r.BedsPerRoom)
		}
	}
	assertCapacityInvariant(t, c)
}

func TestCapacityInvariant_HoldsAcrossOperationSequence(t *testing.T) {
	c := NewRoomConfiguration()
	assertCapacityInvariant(t, c)

	ids := func() map[models.RoomType]string {
		m := map[models.RoomType]string{}
		for _, r := range c.Rows() {
			m[r.RoomType] = r.ID
		}
		return m
	}

	c.AddRow(models.RoomTypeDouble)
	assertCapacityInvariant(t, c)

	c.UpdateRow(ids()[models.RoomTypeSingle], RoomRowPatch{Quantity: intPtr(10), BedsPerRoom: intPtr(6)})
	assertCapacityInvariant(t, c)

	c.UpdateRow(ids()[models.RoomTypeDouble], RoomRowPatch{Quantity: intPtr(6), BedsPerRoom: intPtr(6)})
	assertCapacityInvariant(t, c)

	c.AddRow(models.RoomTypeSuite)
	assertCapacityInvariant(t, c)

	c.UpdateRow(ids()[models.RoomTypeSuite], RoomRowPatch{Quantity: intPtr(3), BedsPerRoom: intPtr(6), NightlyRate: decPtr(9000)})
	assertCapacityInvariant(t, c)

	c.RemoveRow(ids()[models.RoomTypeSingle])
	assertCapacityInvariant(t, c)

	c.UpdateRow(ids()[models.RoomTypeDouble], RoomRowPatch{Quantity: intPtr(6), BedsPerRoom: intPtr(2)})
	assertCapacityInvariant(t, c)

	c.ResetAll()
	assertCapacityInvariant(t, c)
	assert.Len(t, c.Rows(), 1)
	assert.Equal(t, 0, c.TotalRooms())
}

func TestRemoveRow_AllowsEmptyRowSet(t *testing.T) {
	c := NewRoomConfiguration()
	rowID := c.Rows()[0].ID

	require.True(t, c.RemoveRow(rowID))
	assert.Empty(t, c.Rows())
	assert.False(t, c.RemoveRow(rowID), "row already gone")
}

func TestRestoreRoomConfiguration_ReclampsAndAssignsIDs(t *testing.T) {
	rows := []models.RoomRow{
		{RoomType: models.RoomTypeSingle, Quantity: 9, BedsPerRoom: 8, NightlyRate: decimal.NewFromInt(1500)},
	}
	c := RestoreRoomConfiguration(rows)

	restored := c.Rows()
	require.Len(t, restored, 1)
	assert.NotEmpty(t, restored[0].ID)
	assertCapacityInvariant(t, c)
	assert.True(t, restored[0].NightlyRate.Equal(decimal.NewFromInt(1500)))
}

func TestHighestNightlyRate_IgnoresEmptyRows(t *testing.T) {
	c := NewRoomConfiguration()
	rowID := c.Rows()[0].ID

	require.True(t, c.UpdateRow(rowID, RoomRowPatch{NightlyRate: decPtr(5000)}))
	assert.True(t, c.HighestNightlyRate().IsZero(), "zero-quantity rows do not set the highest rate")

	require.True(t, c.UpdateRow(rowID, RoomRowPatch{Quantity: intPtr(2)}))
	assert.True(t, c.HighestNightlyRate().Equal(decimal.NewFromInt(5000)))
}
