// Package chaincode exposes the ledger use cases as Hyperledger Fabric
// contracts. Every transaction opens the use cases over its own stub and
// takes "today" from the transaction timestamp, so all endorsing peers
// evaluate the order guards against the same date.
package chaincode

import (
	"context"
	"fmt"

	"assettransfer/internal/adapters/in/apierr"
	"assettransfer/internal/adapters/out/fabricstore"
	"assettransfer/internal/adapters/out/kvrepo"
	"assettransfer/internal/adapters/out/kvstore"
	"assettransfer/internal/core/application/usecases"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// HandlersFactory builds the use cases for one transaction.
type HandlersFactory func(store ports.Store, clock kernel.Clock) usecases.Handlers

// NewLedgerHandlers wires the use cases straight onto store.
func NewLedgerHandlers(store ports.Store, clock kernel.Clock) usecases.Handlers {
	return usecases.NewHandlers(kvstore.NewUnitOfWorkFactory(store), kvrepo.NewProvider(store), clock)
}

// NewChaincode registers the four contracts of the ledger.
func NewChaincode(factory HandlersFactory) (*contractapi.ContractChaincode, error) {
	l := &ledger{factory: factory}

	assets := &AssetContract{ledger: l}
	assets.Name = "AssetTransfer"

	orders := &OrderContract{ledger: l}
	orders.Name = "basic"

	distributions := &DistributionContract{ledger: l}
	distributions.Name = "DistributionAssetTransfer"

	sales := &SaleAssetContract{ledger: l}
	sales.Name = "sale_asset"

	cc, err := contractapi.NewChaincode(assets, orders, distributions, sales)
	if err != nil {
		return nil, fmt.Errorf("create chaincode: %w", err)
	}
	cc.Info.Title = "assettransfer"
	cc.Info.Version = "1.0.0"
	return cc, nil
}

type ledger struct {
	factory HandlersFactory
}

// open binds the use cases to the transaction behind ctx.
func (l *ledger) open(ctx contractapi.TransactionContextInterface) (usecases.Handlers, error) {
	stub := ctx.GetStub()
	ts, err := stub.GetTxTimestamp()
	if err != nil {
		return usecases.Handlers{}, fmt.Errorf("failed to read transaction timestamp: %w", err)
	}
	if ts == nil {
		return usecases.Handlers{}, fmt.Errorf("transaction %s has no timestamp", stub.GetTxID())
	}

	// the peer exposes writes only after the block commits
	store := kvstore.NewSession(fabricstore.NewStore(stub))
	return l.factory(store, kernel.NewFixedClock(ts.AsTime())), nil
}

func (l *ledger) delete(ctx contractapi.TransactionContextInterface, kind kernel.Kind, id string) error {
	h, err := l.open(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteRecordCommand(kind, id)
	if err != nil {
		return chaincodeError(err)
	}
	return chaincodeError(h.DeleteRecord.Handle(context.Background(), cmd))
}

func (l *ledger) exists(ctx contractapi.TransactionContextInterface, kind kernel.Kind, id string) (bool, error) {
	h, err := l.open(ctx)
	if err != nil {
		return false, err
	}

	query, err := queries.NewRecordExistsQuery(kind, id)
	if err != nil {
		return false, chaincodeError(err)
	}
	exists, err := h.RecordExists.Handle(context.Background(), query)
	if err != nil {
		return false, chaincodeError(err)
	}
	return exists, nil
}

func (l *ledger) transfer(ctx contractapi.TransactionContextInterface, kind kernel.Kind, id, newOwner string) (string, error) {
	h, err := l.open(ctx)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewTransferRecordCommand(kind, id, newOwner)
	if err != nil {
		return "", chaincodeError(err)
	}
	previous, err := h.TransferRecord.Handle(context.Background(), cmd)
	if err != nil {
		return "", chaincodeError(err)
	}
	return previous, nil
}

func readRecord[E, R any](h queries.GetRecordQueryHandler[E], id string, toRecord func(E) R) (*R, error) {
	query, err := queries.NewGetRecordQuery(id)
	if err != nil {
		return nil, chaincodeError(err)
	}

	entity, err := h.Handle(context.Background(), query)
	if err != nil {
		return nil, chaincodeError(err)
	}

	record := toRecord(entity)
	return &record, nil
}

func listRecords[E, R any](h queries.GetAllRecordsQueryHandler[E], toRecord func(E) R) ([]*R, error) {
	entities, err := h.Handle(context.Background(), queries.NewGetAllRecordsQuery())
	if err != nil {
		return nil, chaincodeError(err)
	}

	records := make([]*R, 0, len(entities))
	for _, e := range entities {
		record := toRecord(e)
		records = append(records, &record)
	}
	return records, nil
}

// chaincodeError turns a use case failure into the "CODE: message" error
// clients receive.
func chaincodeError(err error) error {
	if err == nil {
		return nil
	}
	return apierr.FromError(err)
}
