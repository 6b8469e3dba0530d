package menu

import (
	"context"
	"testing"
	"time"

	"menu-manager/core/entity"
	"menu-manager/core/entity/mocks"
	"menu-manager/core/entry"
	"menu-manager/feature/menu/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testLocation = "0b7e72f5-51f9-4ba7-b3a2-9c9f3edfca12"

func setupService(t *testing.T) (*Service, sqlmock.Sqlmock, *mocks.Channel) {
	db, dbMock := setupMockDB(t)
	channel := new(mocks.Channel)
	dispatcher := entry.NewDispatcher(channel, zap.NewNop())
	return NewService(NewRepository(db), dispatcher, zap.NewNop()), dbMock, channel
}

func waitForDispatch(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not run")
	}
}

func TestServiceCreateMintsAndDispatches(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO `menus`").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	done := make(chan struct{})
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	menu, err := svc.Create(context.Background(), &models.Menu{
		Location: testLocation,
		Title:    "Lunch",
		Items: []entry.MenuItem{
			{Title: "Burger", Order: entry.Entry{Price: 9.5, Tax: 0.8}},
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, menu.Token)
	assert.NotEmpty(t, menu.Items[0].Token)
	assert.True(t, entry.IsValidToken(menu.Items[0].Order.Token))

	waitForDispatch(t, done)

	items := channel.Calls[0].Arguments.Get(3).([]entity.Item)
	assert.Len(t, items, 1)
	assert.Equal(t, testLocation, items[0].Location)
	assert.Equal(t, menu.Items[0].Order.Token, items[0].Token)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestServiceCreateInvalidLocation(t *testing.T) {
	svc, _, channel := setupService(t)

	_, err := svc.Create(context.Background(), &models.Menu{Title: "Lunch"})
	assert.ErrorIs(t, err, entry.ErrInvalidArgument)
	channel.AssertNotCalled(t, "RequestMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceUpdateKeepsUnchangedSlots(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
		Title:    "Lunch",
		Items: []entry.MenuItem{
			{
				Token: "i1",
				Title: "Burger",
				Order: entry.Entry{Token: "8f14c9a1-25d7-4b54-b215-2e5e2a9b0c11", Price: 9.5, Tax: 0.8},
			},
		},
		Created:  time.Now(),
		Modified: time.Now(),
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))
	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE `menus` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	payload := &models.Menu{
		Title: "Lunch v2",
		Items: []entry.MenuItem{
			{Token: "i1", Title: "Burger", Order: entry.Entry{Price: 9.5, Tax: 0.8}},
		},
	}

	menu, err := svc.Update(context.Background(), stored.Token, payload)
	assert.NoError(t, err)
	assert.Equal(t, "Lunch v2", menu.Title)
	assert.Equal(t, stored.Items[0].Order.Token, menu.Items[0].Order.Token)
	channel.AssertNotCalled(t, "RequestMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestServiceUpdatePriceChangeReplacesEntry(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	previous := "8f14c9a1-25d7-4b54-b215-2e5e2a9b0c11"
	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
		Items: []entry.MenuItem{
			{Token: "i1", Title: "Burger", Order: entry.Entry{Token: previous, Price: 9.5}},
		},
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))
	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE `menus` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	done := make(chan struct{})
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).Return(nil)
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	payload := &models.Menu{
		Items: []entry.MenuItem{
			{Token: "i1", Title: "Burger", Order: entry.Entry{Price: 10.5}},
		},
	}

	menu, err := svc.Update(context.Background(), stored.Token, payload)
	assert.NoError(t, err)
	assert.NotEqual(t, previous, menu.Items[0].Order.Token)

	waitForDispatch(t, done)

	removed := channel.Calls[1].Arguments.Get(3).([]entity.Item)
	assert.Len(t, removed, 1)
	assert.Equal(t, previous, removed[0].Token)
}

func TestServiceDeleteRetiresEntries(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
		Items: []entry.MenuItem{
			{Token: "i1", Order: entry.Entry{Token: "8f14c9a1-25d7-4b54-b215-2e5e2a9b0c11", Price: 9.5}},
		},
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))
	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM `menus`").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	done := make(chan struct{})
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	err := svc.Delete(context.Background(), stored.Token)
	assert.NoError(t, err)

	waitForDispatch(t, done)

	removed := channel.Calls[0].Arguments.Get(3).([]entity.Item)
	assert.Len(t, removed, 1)
	assert.Equal(t, stored.Items[0].Order.Token, removed[0].Token)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestServiceUpdateItemNotFound(t *testing.T) {
	svc, dbMock, _ := setupService(t)

	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))

	_, err := svc.UpdateItem(context.Background(), stored.Token, "missing", &entry.MenuItem{Title: "Burger"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCreateItemAppends(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
		Items:    []entry.MenuItem{{Token: "i1", Order: entry.Entry{Token: "8f14c9a1-25d7-4b54-b215-2e5e2a9b0c11"}}},
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))
	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE `menus` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	done := make(chan struct{})
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	item, err := svc.CreateItem(context.Background(), stored.Token, &entry.MenuItem{
		Title: "Fries",
		Order: entry.Entry{Price: 3.5},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, item.Token)
	assert.True(t, entry.IsValidToken(item.Order.Token))

	waitForDispatch(t, done)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestServiceCategoryOpsSkipReconciliation(t *testing.T) {
	svc, dbMock, channel := setupService(t)

	stored := &models.Menu{
		Token:    "2f0c8f0a-63d7-4c2e-8a13-8f1b3f0f6f01",
		Location: testLocation,
	}

	dbMock.ExpectQuery("SELECT \\* FROM `menus` WHERE token = \\?").
		WillReturnRows(menuRow(t, stored))
	dbMock.ExpectBegin()
	dbMock.ExpectExec("UPDATE `menus` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	category, err := svc.CreateCategory(context.Background(), stored.Token, models.Category{Title: "Sides"})
	assert.NoError(t, err)
	assert.NotEmpty(t, category.Token)
	channel.AssertNotCalled(t, "RequestMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
