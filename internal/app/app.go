// Package app hosts the asset ledger and the dex on a persistent IAVL
// multistore. Every unit of work runs on a fresh context at the next height
// and is committed only if it succeeds.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawdex/x/assets"
	assetskeeper "github.com/paw-chain/pawdex/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawdex/x/assets/types"
	"github.com/paw-chain/pawdex/x/dex"
	dexkeeper "github.com/paw-chain/pawdex/x/dex/keeper"
	dextypes "github.com/paw-chain/pawdex/x/dex/types"
)

var (
	// ErrAlreadyInitialized is returned by InitChain on a store that has state
	ErrAlreadyInitialized = errors.New("store is already initialized")
	// ErrNotInitialized is returned when work is submitted before InitChain
	ErrNotInitialized = errors.New("store is not initialized; run init first")
)

// EventSink receives the events of every committed block
type EventSink interface {
	HandleEvents(ctx context.Context, height int64, events sdk.Events) error
}

// BlockResult describes a committed unit of work
type BlockResult struct {
	Height  int64
	AppHash []byte
	Events  sdk.Events
}

// App wires the keepers to a commit multistore
type App struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	cdc    *codec.LegacyAmino

	// keys to access the substores
	keys map[string]*storetypes.KVStoreKey

	// keepers
	AssetsKeeper assetskeeper.Keeper
	DEXKeeper    dexkeeper.Keeper
	MsgServer    dextypes.MsgServer

	modules    []Module
	invariants *InvariantRegistry

	// mu serializes all access to cms; the store has a single writer
	mu    sync.Mutex
	sinks []EventSink
	now   func() time.Time
}

// Open opens or creates the goleveldb database under home/data
func Open(home string, logger log.Logger) (*App, error) {
	db, err := dbm.NewDB(AppName, dbm.GoLevelDBBackend, filepath.Join(home, "data"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	app, err := New(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// New builds the app on an existing database and loads the latest version
func New(db dbm.DB, logger log.Logger) (*App, error) {
	SetConfig()

	keys := storetypes.NewKVStoreKeys(assetstypes.StoreKey, dextypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app := &App{
		logger:     logger,
		db:         db,
		cms:        cms,
		cdc:        MakeLegacyAmino(),
		keys:       keys,
		invariants: &InvariantRegistry{},
		now:        func() time.Time { return time.Now().UTC() },
	}

	app.AssetsKeeper = assetskeeper.NewKeeper(assetstypes.ModuleCdc, keys[assetstypes.StoreKey])
	app.DEXKeeper = *dexkeeper.NewKeeper(dextypes.ModuleCdc, keys[dextypes.StoreKey], app.AssetsKeeper)
	app.MsgServer = dexkeeper.NewMsgServerImpl(app.DEXKeeper)

	app.modules = []Module{
		assets.NewAppModule(app.AssetsKeeper),
		dex.NewAppModule(app.DEXKeeper),
	}
	for _, m := range app.modules {
		m.RegisterInvariants(app.invariants)
	}

	return app, nil
}

// LegacyAmino returns the app's amino codec
func (app *App) LegacyAmino() *codec.LegacyAmino { return app.cdc }

// GetKey returns the KVStoreKey for the provided store key.
func (app *App) GetKey(storeKey string) *storetypes.KVStoreKey { return app.keys[storeKey] }

// Invariants returns the invariant registry
func (app *App) Invariants() *InvariantRegistry { return app.invariants }

// AddEventSink registers a sink for committed events
func (app *App) AddEventSink(sink EventSink) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.sinks = append(app.sinks, sink)
}

// LastBlockHeight returns the height of the last commit
func (app *App) LastBlockHeight() int64 {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cms.LastCommitID().Version
}

// InitChain loads genesis into an empty store and commits it as height 1
func (app *App) InitChain(genesis GenesisState) (BlockResult, error) {
	if err := genesis.Validate(app.cdc); err != nil {
		return BlockResult{}, fmt.Errorf("invalid genesis: %w", err)
	}
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cms.LastCommitID().Version > 0 {
		return BlockResult{}, ErrAlreadyInitialized
	}

	return app.commitLocked(func(ctx sdk.Context) error {
		if err := initGenesis(ctx, app.cdc, app.modules, genesis); err != nil {
			return err
		}
		_, err := app.invariants.Check(ctx)
		return err
	})
}

// Exec runs fn on a fresh context at the next height. State and events are
// committed only if fn returns nil.
func (app *App) Exec(fn func(ctx sdk.Context) error) (BlockResult, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cms.LastCommitID().Version == 0 {
		return BlockResult{}, ErrNotInitialized
	}
	return app.commitLocked(fn)
}

// commitLocked must be called with mu held
func (app *App) commitLocked(fn func(ctx sdk.Context) error) (BlockResult, error) {
	height := app.cms.LastCommitID().Version + 1
	cache := app.cms.CacheMultiStore()
	header := cmtproto.Header{ChainID: AppName, Height: height, Time: app.now()}
	ctx := sdk.NewContext(cache, header, false, app.logger)

	if err := fn(ctx); err != nil {
		return BlockResult{}, err
	}

	cache.Write()
	commitID := app.cms.Commit()
	events := ctx.EventManager().Events()

	app.logger.Debug("committed block", "height", commitID.Version, "events", len(events))

	for _, sink := range app.sinks {
		if err := sink.HandleEvents(ctx, commitID.Version, events); err != nil {
			app.logger.Error("event sink failed", "height", commitID.Version, "err", err)
		}
	}

	return BlockResult{Height: commitID.Version, AppHash: commitID.Hash, Events: events}, nil
}

// Query runs fn against the latest committed state. Writes made by fn are discarded.
func (app *App) Query(fn func(ctx sdk.Context) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	header := cmtproto.Header{ChainID: AppName, Height: app.cms.LastCommitID().Version, Time: app.now()}
	ctx := sdk.NewContext(app.cms.CacheMultiStore(), header, false, app.logger)
	return fn(ctx)
}

// CheckInvariants runs every registered invariant against the latest state
func (app *App) CheckInvariants() ([]InvariantResult, error) {
	var results []InvariantResult
	err := app.Query(func(ctx sdk.Context) error {
		var checkErr error
		results, checkErr = app.invariants.Check(ctx)
		return checkErr
	})
	return results, err
}

// ExportGenesis exports the latest state as a genesis document
func (app *App) ExportGenesis() (GenesisState, error) {
	var genesis GenesisState
	err := app.Query(func(ctx sdk.Context) error {
		var exportErr error
		genesis, exportErr = exportGenesis(ctx, app.cdc, app.modules)
		return exportErr
	})
	return genesis, err
}

// Close closes the underlying database
func (app *App) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.db.Close()
}
