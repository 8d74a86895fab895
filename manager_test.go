package flagx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggybyte-technology/flagx/errors"
	"github.com/eggybyte-technology/flagx/flagxtest"
)

func TestNewManagerRequiresLogger(t *testing.T) {
	_, err := NewManager(Options{})
	flagxtest.AssertError(t, err, errors.CodeInvalidArgument)
}

func TestNewManagerDefaultsToEmptyRegistry(t *testing.T) {
	logger := flagxtest.NewMockLogger(t)
	mgr, err := NewManager(Options{Logger: logger})
	require.NoError(t, err)

	assert.False(t, mgr.Current().Has(flagOne))
	assert.Empty(t, mgr.Snapshot())
	logger.AssertLogged("INFO", "flag registry loaded")
}

func TestManagerPin(t *testing.T) {
	logger := flagxtest.NewMockLogger(t)
	mgr, err := NewManager(Options{Logger: logger, Initial: stepped()})
	require.NoError(t, err)

	assert.Equal(t, modeTwo, Value(mgr.Current(), flagMode))

	mgr.Pin(3)
	assert.Equal(t, modeThree, Value(mgr.Current(), flagMode))
	logger.AssertLogged("INFO", "flag registry pinned")

	// The raw delta registry survives pinning, so widening works again.
	mgr.Pin(7)
	assert.Equal(t, modeTwo, Value(mgr.Current(), flagMode))
}

func TestManagerReplace(t *testing.T) {
	logger := flagxtest.NewMockLogger(t)
	mgr, err := NewManager(Options{Logger: logger})
	require.NoError(t, err)

	mgr.Replace(stepped())
	assert.True(t, Value(mgr.Current(), flagTwo))
	logger.AssertLogged("INFO", "flag registry updated")

	mgr.Replace(nil)
	assert.False(t, mgr.Current().Has(flagTwo))
}

func TestManagerSnapshotIsACopy(t *testing.T) {
	mgr, err := NewManager(Options{Logger: flagxtest.NewMockLogger(t), Initial: stepped()})
	require.NoError(t, err)

	snapshot := mgr.Snapshot()
	require.Len(t, snapshot, 3)
	snapshot[flagOne.ID()] = true

	assert.False(t, Value(mgr.Current(), flagOne))
}

func TestManagerOnUpdate(t *testing.T) {
	mgr, err := NewManager(Options{Logger: flagxtest.NewMockLogger(t)})
	require.NoError(t, err)

	updates := make(chan Versioned, 1)
	unsubscribe := mgr.OnUpdate(func(v Versioned) { updates <- v })

	mgr.Replace(stepped())
	select {
	case v := <-updates:
		assert.True(t, Value(v, flagTwo))
	case <-time.After(time.Second):
		t.Fatal("update notification not delivered")
	}

	unsubscribe()
	mgr.Replace(nil)
	select {
	case <-updates:
		t.Fatal("unsubscribed callback still invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManagerBind(t *testing.T) {
	mgr, err := NewManager(Options{Logger: flagxtest.NewMockLogger(t), Initial: stepped()})
	require.NoError(t, err)

	var fs featureSet
	require.NoError(t, mgr.Bind(&fs))
	assert.False(t, fs.Verbose) // version 3 sets one=false
	assert.Equal(t, modeTwo, fs.Mode)

	assert.True(t, errors.IsCode(mgr.Bind(nil), errors.CodeInvalidArgument))
}

func TestManagerBindWithValidation(t *testing.T) {
	type validated struct {
		Region string `flag:"flagx:test/region" validate:"required"`
	}

	mgr, err := NewManager(Options{Logger: flagxtest.NewMockLogger(t)})
	require.NoError(t, err)

	var v validated
	err = mgr.Bind(&v, WithValidation())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))

	region := String(testKey("region"), "")
	mgr.Replace(NewVersionedBuilder().
		Version(1, func(b *Builder) { b.Value(region.Of("eu-west-1")) }).
		Build())
	assert.NoError(t, mgr.Bind(&v, WithValidation()))
}
