package materialize_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ormpath/ormpath/catalog"
	"github.com/ormpath/ormpath/dialect"
	"github.com/ormpath/ormpath/materialize"
)

type Widget struct {
	Base catalog.Meta `orm:"table=widgets"`
	ID   string       `orm:"column=id,pk"`
	Name string       `orm:"column=name"`
	Qty  *int         `orm:"column=qty"`
}

type Maker struct {
	Base catalog.Meta `orm:"table=makers"`
	ID   string       `orm:"column=id,pk"`
	City string       `orm:"column=city"`
}

func TestReadObject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "qty"}).AddRow("w1", "bolt", int64(12)),
	)
	rows, err := db.Query("SELECT id, name, qty FROM widgets")
	require.NoError(t, err)
	require.True(t, rows.Next())

	m := materialize.New(catalog.New(), dialect.NewPostgres())
	w, err := materialize.ReadObject[Widget](m, rows)
	require.NoError(t, err)
	require.Equal(t, "w1", w.ID)
	require.Equal(t, "bolt", w.Name)
	require.NotNil(t, w.Qty)
	require.Equal(t, 12, *w.Qty)
}

func TestReadObjectMissingColumnIsMissingField(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).AddRow("w1", "bolt"),
	)
	rows, err := db.Query("SELECT id, name FROM widgets")
	require.NoError(t, err)
	require.True(t, rows.Next())

	m := materialize.New(catalog.New(), dialect.NewPostgres())
	_, err = materialize.ReadObject[Widget](m, rows)
	require.Error(t, err)
}

func TestReadComposite2(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "qty", "city"}).
			AddRow("w1", "bolt", int64(12), "denver"),
	)
	rows, err := db.Query("SELECT id, name, qty, city FROM widgets JOIN makers")
	require.NoError(t, err)
	require.True(t, rows.Next())

	m := materialize.New(catalog.New(), dialect.NewPostgres())
	c, err := materialize.ReadComposite2[Widget, Maker](m, rows)
	require.NoError(t, err)
	require.Equal(t, "bolt", c.Object1().Name)
	require.Equal(t, "denver", c.Object2().City)
}
