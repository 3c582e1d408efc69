package codec

import (
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"
)

// AssetRecord is the stored form of an asset.
type AssetRecord struct {
	Owner     string `json:"owner"`
	Price     int    `json:"price"`
	ProductID string `json:"productID"`
}

// OrderRecord is the stored form of an order. "ID" sorts before the
// lower-case names in byte order.
type OrderRecord struct {
	ID           string `json:"ID"`
	Assembler    string `json:"assembler"`
	DeliveryDate string `json:"deliveryDate"`
	LeatherCount int    `json:"leatherCount"`
	MetalCount   int    `json:"metalCount"`
	Orderer      string `json:"orderer"`
	Owner        string `json:"owner"`
	Price        int    `json:"price"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
}

// DistributionRecord is the stored form of a distribution.
type DistributionRecord struct {
	DistributionID string `json:"distributionId"`
	Location       string `json:"location"`
	Owner          string `json:"owner"`
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	SalesID        string `json:"salesId"`
	Shipper        string `json:"shipper"`
	ShippingCost   int    `json:"shippingCost"`
}

// SaleRecord is the stored form of a sale.
type SaleRecord struct {
	Contractor string `json:"contractor"`
	Owner      string `json:"owner"`
	Product    string `json:"product"`
	Quantity   int    `json:"quantity"`
	SaleID     string `json:"saleID"`
}

func AssetFromDomain(a *asset.Asset) AssetRecord {
	return AssetRecord{
		Owner:     a.Owner(),
		Price:     a.Price(),
		ProductID: a.ProductID(),
	}
}

func (r AssetRecord) ToDomain() (*asset.Asset, error) {
	return asset.NewAsset(r.ProductID, r.Owner, r.Price)
}

func OrderFromDomain(o *order.Order) OrderRecord {
	return OrderRecord{
		ID:           o.ID(),
		Assembler:    o.Assembler(),
		DeliveryDate: o.DeliveryDate().String(),
		LeatherCount: o.LeatherCount(),
		MetalCount:   o.MetalCount(),
		Orderer:      o.Orderer(),
		Owner:        o.Owner(),
		Price:        o.Price(),
		ProductName:  o.ProductName(),
		Quantity:     o.Quantity(),
		Status:       o.StatusLabel(),
	}
}

func (r OrderRecord) ToDomain() (*order.Order, error) {
	deliveryDate, err := kernel.ParseDate(r.DeliveryDate)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(r.ID, r.Status, order.Details{
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		DeliveryDate: deliveryDate,
		Price:        r.Price,
		Orderer:      r.Orderer,
		Assembler:    r.Assembler,
		LeatherCount: r.LeatherCount,
		MetalCount:   r.MetalCount,
		Owner:        r.Owner,
	})
}

func DistributionFromDomain(d *distribution.Distribution) DistributionRecord {
	return DistributionRecord{
		DistributionID: d.DistributionID(),
		Location:       d.Location(),
		Owner:          d.Owner(),
		ProductID:      d.ProductID(),
		Quantity:       d.Quantity(),
		SalesID:        d.SalesID(),
		Shipper:        d.Shipper(),
		ShippingCost:   d.ShippingCost(),
	}
}

func (r DistributionRecord) ToDomain() (*distribution.Distribution, error) {
	return distribution.NewDistribution(r.DistributionID, distribution.Details{
		Owner:        r.Owner,
		SalesID:      r.SalesID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		Shipper:      r.Shipper,
		Location:     r.Location,
		ShippingCost: r.ShippingCost,
	})
}

func SaleFromDomain(s *sale.Sale) SaleRecord {
	return SaleRecord{
		Contractor: s.Contractor(),
		Owner:      s.Owner(),
		Product:    s.Product(),
		Quantity:   s.Quantity(),
		SaleID:     s.SaleID(),
	}
}

func (r SaleRecord) ToDomain() (*sale.Sale, error) {
	return sale.NewSale(r.SaleID, sale.Details{
		Owner:      r.Owner,
		Product:    r.Product,
		Quantity:   r.Quantity,
		Contractor: r.Contractor,
	})
}

// Assets returns the codec for asset records.
func Assets() Codec[*asset.Asset] {
	return recordCodec[*asset.Asset, AssetRecord]{
		kind:       kernel.KindAsset,
		fromDomain: AssetFromDomain,
		toDomain:   AssetRecord.ToDomain,
	}
}

// Orders returns the codec for order records.
func Orders() Codec[*order.Order] {
	return recordCodec[*order.Order, OrderRecord]{
		kind:       kernel.KindOrder,
		fromDomain: OrderFromDomain,
		toDomain:   OrderRecord.ToDomain,
	}
}

// Distributions returns the codec for distribution records.
func Distributions() Codec[*distribution.Distribution] {
	return recordCodec[*distribution.Distribution, DistributionRecord]{
		kind:       kernel.KindDistribution,
		fromDomain: DistributionFromDomain,
		toDomain:   DistributionRecord.ToDomain,
	}
}

// Sales returns the codec for sale records.
func Sales() Codec[*sale.Sale] {
	return recordCodec[*sale.Sale, SaleRecord]{
		kind:       kernel.KindSale,
		fromDomain: SaleFromDomain,
		toDomain:   SaleRecord.ToDomain,
	}
}
