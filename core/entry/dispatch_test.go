package entry

import (
	"context"
	"errors"
	"testing"

	"menu-manager/core/entity"
	"menu-manager/core/entity/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcess_EmptyDigest(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	err := d.Process(context.Background(), &Digest{})
	assert.NoError(t, err)

	channel.AssertNotCalled(t, "RequestMany")
}

func TestProcess_CreateBeforeRemove(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	var order []entity.Operation
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			order = append(order, args.Get(2).(entity.Operation))
		}).
		Return(nil)

	digest := &Digest{
		Created: []LedgerEntry{{Token: uuid.NewString(), Location: location, Price: 1}},
		Removed: []Removal{{Location: location, Token: uuid.NewString()}},
	}

	err := d.Process(context.Background(), digest)
	require.NoError(t, err)

	require.Equal(t, []entity.Operation{entity.OperationCreate, entity.OperationDelete}, order)
}

func TestProcess_FiltersLegacyRemovalTokens(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	valid := uuid.NewString()

	var deleted []entity.Item
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything).
		Run(func(args mock.Arguments) {
			deleted = args.Get(3).([]entity.Item)
		}).
		Return(nil)

	digest := &Digest{
		Removed: []Removal{
			{Location: location, Token: "12345"},
			{Location: location, Token: valid},
			{Location: location, Token: "legacy"},
		},
	}

	err := d.Process(context.Background(), digest)
	require.NoError(t, err)

	require.Len(t, deleted, 1)
	assert.Equal(t, valid, deleted[0].Token)
}

func TestProcess_OnlyLegacyRemovals(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	digest := &Digest{
		Removed: []Removal{{Location: location, Token: "12345"}},
	}

	err := d.Process(context.Background(), digest)
	assert.NoError(t, err)

	channel.AssertNotCalled(t, "RequestMany")
}

func TestProcess_RemoveAttemptedAfterCreateFailure(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	createErr := errors.New("backend down")
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).
		Return(createErr)
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything).
		Return(nil)

	digest := &Digest{
		Created: []LedgerEntry{{Token: uuid.NewString(), Location: location}},
		Removed: []Removal{{Location: location, Token: uuid.NewString()}},
	}

	err := d.Process(context.Background(), digest)
	require.Error(t, err)
	assert.ErrorIs(t, err, createErr)

	// The removal batch is independent and must still have been submitted.
	channel.AssertCalled(t, "RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything)
}

func TestProcess_JoinsStepErrors(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	createErr := errors.New("create failed")
	deleteErr := errors.New("delete failed")
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).
		Return(createErr)
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationDelete, mock.Anything).
		Return(deleteErr)

	digest := &Digest{
		Created: []LedgerEntry{{Token: uuid.NewString(), Location: location}},
		Removed: []Removal{{Location: location, Token: uuid.NewString()}},
	}

	err := d.Process(context.Background(), digest)
	require.Error(t, err)
	assert.ErrorIs(t, err, createErr)
	assert.ErrorIs(t, err, deleteErr)
}

func TestProcess_CreatePayloadCarriesEntry(t *testing.T) {
	channel := new(mocks.Channel)
	d := NewDispatcher(channel, zap.NewNop())

	var created []entity.Item
	channel.On("RequestMany", mock.Anything, entity.TypeEntry, entity.OperationCreate, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(3).([]entity.Item)
		}).
		Return(nil)

	ledger := LedgerEntry{Token: uuid.NewString(), Location: location, Price: 2.5, Menu: "menu-1", MenuItem: "I1"}
	err := d.Process(context.Background(), &Digest{Created: []LedgerEntry{ledger}})
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, ledger.Token, created[0].Token)
	assert.Equal(t, location, created[0].Location)
	assert.Equal(t, ledger, created[0].Entity)
}
