package http

import (
	"net/http"

	"assettransfer/internal/adapters/in/apierr"
	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetAllAssets handles GET /api/v1/assets.
func (s *Server) GetAllAssets(c echo.Context) error {
	return listRecords(c, s.handlers.GetAllAssets, codec.AssetFromDomain)
}

// ReadAsset handles GET /api/v1/assets/{id}.
func (s *Server) ReadAsset(c echo.Context) error {
	return readRecord(c, s.handlers.GetAsset, codec.AssetFromDomain)
}

// CreateAsset handles POST /api/v1/assets.
func (s *Server) CreateAsset(c echo.Context) error {
	var req AssetRequest
	if err := bindBody(c, &req, &req.ProductID, ""); err != nil {
		return err
	}

	cmd, err := commands.NewCreateAssetCommand(req.ProductID, req.Owner, req.Price)
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.CreateAsset.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusCreated, req.ProductID, s.handlers.GetAsset, codec.AssetFromDomain)
}

// UpdateAsset handles PUT /api/v1/assets/{id}.
func (s *Server) UpdateAsset(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AssetRequest
	if err = bindBody(c, &req, &req.ProductID, id); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAssetCommand(id, req.Owner, req.Price)
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.UpdateAsset.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusOK, id, s.handlers.GetAsset, codec.AssetFromDomain)
}

// GetAllOrders handles GET /api/v1/orders.
func (s *Server) GetAllOrders(c echo.Context) error {
	return listRecords(c, s.handlers.GetAllOrders, codec.OrderFromDomain)
}

// ReadOrder handles GET /api/v1/orders/{id}.
func (s *Server) ReadOrder(c echo.Context) error {
	return readRecord(c, s.handlers.GetOrder, codec.OrderFromDomain)
}

// CreateOrder handles POST /api/v1/orders. The status is stored as given.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := bindBody(c, &req, &req.ID, ""); err != nil {
		return err
	}
	if err := validate.Var(req.Status, "required"); err != nil {
		return apierr.InvalidArgument("status is required")
	}

	details, err := req.details()
	if err != nil {
		return apierr.FromError(err)
	}
	cmd, err := commands.NewCreateOrderCommand(req.ID, req.Status, details)
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusCreated, req.ID, s.handlers.GetOrder, codec.OrderFromDomain)
}

// UpdateOrder handles PUT /api/v1/orders/{id}. Any status in the body is
// ignored; the stored status advances when its guards hold.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req OrderRequest
	if err = bindBody(c, &req, &req.ID, id); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return apierr.FromError(err)
	}
	cmd, err := commands.NewUpdateOrderCommand(id, details)
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusOK, id, s.handlers.GetOrder, codec.OrderFromDomain)
}

// GetOverdueOrders handles GET /api/v1/orders/overdue.
func (s *Server) GetOverdueOrders(c echo.Context) error {
	overdue, err := s.handlers.GetOverdueOrders.Handle(c.Request().Context(), queries.NewGetOverdueOrdersQuery())
	if err != nil {
		return apierr.FromError(err)
	}

	response := make([]OverdueOrderResponse, len(overdue))
	for i, o := range overdue {
		response[i] = overdueFromQuery(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAllDistributions handles GET /api/v1/distributions.
func (s *Server) GetAllDistributions(c echo.Context) error {
	return listRecords(c, s.handlers.GetAllDistributions, codec.DistributionFromDomain)
}

// ReadDistribution handles GET /api/v1/distributions/{id}.
func (s *Server) ReadDistribution(c echo.Context) error {
	return readRecord(c, s.handlers.GetDistribution, codec.DistributionFromDomain)
}

// CreateDistribution handles POST /api/v1/distributions.
func (s *Server) CreateDistribution(c echo.Context) error {
	var req DistributionRequest
	if err := bindBody(c, &req, &req.DistributionID, ""); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDistributionCommand(req.DistributionID, req.details())
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.CreateDistribution.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusCreated, req.DistributionID, s.handlers.GetDistribution, codec.DistributionFromDomain)
}

// UpdateDistribution handles PUT /api/v1/distributions/{id}.
func (s *Server) UpdateDistribution(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req DistributionRequest
	if err = bindBody(c, &req, &req.DistributionID, id); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDistributionCommand(id, req.details())
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.UpdateDistribution.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusOK, id, s.handlers.GetDistribution, codec.DistributionFromDomain)
}

// RerouteDistribution handles POST /api/v1/distributions/{id}/reroute.
func (s *Server) RerouteDistribution(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req RerouteRequest
	if err = bindBody(c, &req, nil, ""); err != nil {
		return err
	}

	cmd, err := commands.NewRerouteDistributionCommand(id, req.Shipper, req.Location)
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.RerouteDistribution.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusOK, id, s.handlers.GetDistribution, codec.DistributionFromDomain)
}

// GetAllSales handles GET /api/v1/sales.
func (s *Server) GetAllSales(c echo.Context) error {
	return listRecords(c, s.handlers.GetAllSales, codec.SaleFromDomain)
}

// ReadSale handles GET /api/v1/sales/{id}.
func (s *Server) ReadSale(c echo.Context) error {
	return readRecord(c, s.handlers.GetSale, codec.SaleFromDomain)
}

// CreateSale handles POST /api/v1/sales.
func (s *Server) CreateSale(c echo.Context) error {
	var req SaleRequest
	if err := bindBody(c, &req, &req.SaleID, ""); err != nil {
		return err
	}

	cmd, err := commands.NewCreateSaleCommand(req.SaleID, req.details())
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.CreateSale.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusCreated, req.SaleID, s.handlers.GetSale, codec.SaleFromDomain)
}

// UpdateSale handles PUT /api/v1/sales/{id}.
func (s *Server) UpdateSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SaleRequest
	if err = bindBody(c, &req, &req.SaleID, id); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSaleCommand(id, req.details())
	if err != nil {
		return apierr.FromError(err)
	}
	if err = s.handlers.UpdateSale.Handle(c.Request().Context(), cmd); err != nil {
		return apierr.FromError(err)
	}

	return writeRecord(c, http.StatusOK, id, s.handlers.GetSale, codec.SaleFromDomain)
}
