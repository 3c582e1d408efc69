package http

import (
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Request bodies. On PUT the identifier comes from the path; a body
// identifier, when present, must match it.

type AssetRequest struct {
	ProductID string `json:"productID" validate:"required"`
	Owner     string `json:"owner"`
	Price     int    `json:"price"`
}

type OrderRequest struct {
	ID           string `json:"ID" validate:"required"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	Status       string `json:"status"`
	Price        int    `json:"price"`
	Orderer      string `json:"orderer"`
	Assembler    string `json:"assembler"`
	LeatherCount int    `json:"leatherCount" validate:"gte=0"`
	MetalCount   int    `json:"metalCount" validate:"gte=0"`
	Owner        string `json:"owner"`
}

type DistributionRequest struct {
	DistributionID string `json:"distributionId" validate:"required"`
	Owner          string `json:"owner"`
	SalesID        string `json:"salesId"`
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	Shipper        string `json:"shipper"`
	Location       string `json:"location"`
	ShippingCost   int    `json:"shippingCost"`
}

type SaleRequest struct {
	SaleID     string `json:"saleID" validate:"required"`
	Owner      string `json:"owner"`
	Product    string `json:"product"`
	Quantity   int    `json:"quantity"`
	Contractor string `json:"contractor"`
}

type TransferRequest struct {
	NewOwner string `json:"newOwner" validate:"required"`
}

type RerouteRequest struct {
	Shipper  string `json:"shipper" validate:"required_without=Location"`
	Location string `json:"location" validate:"required_without=Shipper"`
}

// Response bodies. Records are written in their canonical stored form.

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type TransferResponse struct {
	NewOwner      string `json:"newOwner"`
	PreviousOwner string `json:"previousOwner"`
}

type OverdueOrderResponse struct {
	ID           string `json:"ID"`
	Assembler    string `json:"assembler"`
	DaysOverdue  int    `json:"daysOverdue"`
	DeliveryDate string `json:"deliveryDate"`
	Owner        string `json:"owner"`
	Status       string `json:"status"`
}

func (r OrderRequest) details() (order.Details, error) {
	deliveryDate, err := kernel.ParseDate(r.DeliveryDate)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		DeliveryDate: deliveryDate,
		Price:        r.Price,
		Orderer:      r.Orderer,
		Assembler:    r.Assembler,
		LeatherCount: r.LeatherCount,
		MetalCount:   r.MetalCount,
		Owner:        r.Owner,
	}, nil
}

func (r DistributionRequest) details() distribution.Details {
	return distribution.Details{
		Owner:        r.Owner,
		SalesID:      r.SalesID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		Shipper:      r.Shipper,
		Location:     r.Location,
		ShippingCost: r.ShippingCost,
	}
}

func (r SaleRequest) details() sale.Details {
	return sale.Details{
		Owner:      r.Owner,
		Product:    r.Product,
		Quantity:   r.Quantity,
		Contractor: r.Contractor,
	}
}

func overdueFromQuery(o queries.GetOverdueOrdersQueryResponse) OverdueOrderResponse {
	return OverdueOrderResponse{
		ID:           o.ID,
		Assembler:    o.Assembler,
		DaysOverdue:  o.DaysOverdue,
		DeliveryDate: o.DeliveryDate.String(),
		Owner:        o.Owner,
		Status:       o.Status,
	}
}
