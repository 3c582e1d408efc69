package chaincode

import (
	"context"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// OrderContract drives production orders through their fulfilment stages.
type OrderContract struct {
	contractapi.Contract
	ledger *ledger
}

// CreateOrder stores a new order with the status label as given. No
// transition runs on creation.
func (c *OrderContract) CreateOrder(
	ctx contractapi.TransactionContextInterface,
	id, productName string,
	quantity int,
	deliveryDate, status string,
	price int,
	orderer, assembler string,
	leatherCount, metalCount int,
	owner string,
) (*codec.OrderRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	details, err := orderDetails(productName, quantity, deliveryDate, price, orderer, assembler, leatherCount, metalCount, owner)
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewCreateOrderCommand(id, status, details)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.CreateOrder.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetOrder, id, codec.OrderFromDomain)
}

func (c *OrderContract) ReadOrder(ctx contractapi.TransactionContextInterface, id string) (*codec.OrderRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return readRecord(h.GetOrder, id, codec.OrderFromDomain)
}

// UpdateOrder replaces the order details and advances the stored status when
// the guards of its stage hold. The status argument is accepted for client
// compatibility and ignored.
func (c *OrderContract) UpdateOrder(
	ctx contractapi.TransactionContextInterface,
	id, productName string,
	quantity int,
	deliveryDate, _ string,
	price int,
	orderer, assembler string,
	leatherCount, metalCount int,
	owner string,
) (*codec.OrderRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	details, err := orderDetails(productName, quantity, deliveryDate, price, orderer, assembler, leatherCount, metalCount, owner)
	if err != nil {
		return nil, err
	}
	cmd, err := commands.NewUpdateOrderCommand(id, details)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.UpdateOrder.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetOrder, id, codec.OrderFromDomain)
}

func (c *OrderContract) DeleteOrder(ctx contractapi.TransactionContextInterface, id string) error {
	return c.ledger.delete(ctx, kernel.KindOrder, id)
}

func (c *OrderContract) OrderExists(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	return c.ledger.exists(ctx, kernel.KindOrder, id)
}

func (c *OrderContract) TransferOrder(ctx contractapi.TransactionContextInterface, id, newOwner string) (string, error) {
	return c.ledger.transfer(ctx, kernel.KindOrder, id, newOwner)
}

func (c *OrderContract) GetAllOrders(ctx contractapi.TransactionContextInterface) ([]*codec.OrderRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return listRecords(h.GetAllOrders, codec.OrderFromDomain)
}

// OverdueOrder is one entry of GetOverdueOrders.
type OverdueOrder struct {
	ID           string `json:"ID"`
	Assembler    string `json:"assembler"`
	DaysOverdue  int    `json:"daysOverdue"`
	DeliveryDate string `json:"deliveryDate"`
	Owner        string `json:"owner"`
	Status       string `json:"status"`
}

// GetOverdueOrders lists unfinished orders whose delivery date has passed.
func (c *OrderContract) GetOverdueOrders(ctx contractapi.TransactionContextInterface) ([]*OverdueOrder, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	overdue, err := h.GetOverdueOrders.Handle(context.Background(), queries.NewGetOverdueOrdersQuery())
	if err != nil {
		return nil, chaincodeError(err)
	}

	result := make([]*OverdueOrder, 0, len(overdue))
	for _, o := range overdue {
		result = append(result, &OverdueOrder{
			ID:           o.ID,
			Assembler:    o.Assembler,
			DaysOverdue:  o.DaysOverdue,
			DeliveryDate: o.DeliveryDate.String(),
			Owner:        o.Owner,
			Status:       o.Status,
		})
	}
	return result, nil
}

func orderDetails(
	productName string,
	quantity int,
	deliveryDate string,
	price int,
	orderer, assembler string,
	leatherCount, metalCount int,
	owner string,
) (order.Details, error) {
	date, err := kernel.ParseDate(deliveryDate)
	if err != nil {
		return order.Details{}, chaincodeError(err)
	}

	return order.Details{
		ProductName:  productName,
		Quantity:     quantity,
		DeliveryDate: date,
		Price:        price,
		Orderer:      orderer,
		Assembler:    assembler,
		LeatherCount: leatherCount,
		MetalCount:   metalCount,
		Owner:        owner,
	}, nil
}
