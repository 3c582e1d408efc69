package http

import (
	"fmt"
	"net/http"

	"assettransfer/internal/adapters/in/apierr"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type routeKind struct {
	kind kernel.Kind
	path string
}

func routeKinds() []routeKind {
	return []routeKind{
		{kind: kernel.KindAsset, path: "assets"},
		{kind: kernel.KindOrder, path: "orders"},
		{kind: kernel.KindDistribution, path: "distributions"},
		{kind: kernel.KindSale, path: "sales"},
	}
}

// pathID binds the {id} path parameter.
func pathID(c echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", apierr.InvalidArgument(fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// bindBody decodes the JSON body into dst. When pathID is set it is written
// to *bodyID first, so an update body may omit its identifier.
func bindBody(c echo.Context, dst any, bodyID *string, pathID string) error {
	if err := c.Bind(dst); err != nil {
		return apierr.InvalidArgument("Invalid request body")
	}

	if pathID != "" {
		if *bodyID != "" && *bodyID != pathID {
			return apierr.InvalidArgument(fmt.Sprintf("body identifier %q does not match path identifier %q", *bodyID, pathID))
		}
		*bodyID = pathID
	}

	if err := validate.Struct(dst); err != nil {
		return apierr.InvalidArgument(err.Error())
	}
	return nil
}

// writeRecord reads id back through h and writes it as its stored form.
func writeRecord[E, R any](
	c echo.Context,
	status int,
	id string,
	h queries.GetRecordQueryHandler[E],
	toRecord func(E) R,
) error {
	query, err := queries.NewGetRecordQuery(id)
	if err != nil {
		return apierr.FromError(err)
	}

	entity, err := h.Handle(c.Request().Context(), query)
	if err != nil {
		return apierr.FromError(err)
	}

	return c.JSON(status, toRecord(entity))
}

func readRecord[E, R any](c echo.Context, h queries.GetRecordQueryHandler[E], toRecord func(E) R) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return writeRecord(c, http.StatusOK, id, h, toRecord)
}

func listRecords[E, R any](c echo.Context, h queries.GetAllRecordsQueryHandler[E], toRecord func(E) R) error {
	entities, err := h.Handle(c.Request().Context(), queries.NewGetAllRecordsQuery())
	if err != nil {
		return apierr.FromError(err)
	}

	records := make([]R, 0, len(entities))
	for _, e := range entities {
		records = append(records, toRecord(e))
	}
	return c.JSON(http.StatusOK, records)
}

func (s *Server) deleteRecord(kind kernel.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		cmd, err := commands.NewDeleteRecordCommand(kind, id)
		if err != nil {
			return apierr.FromError(err)
		}
		if err = s.handlers.DeleteRecord.Handle(c.Request().Context(), cmd); err != nil {
			return apierr.FromError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func (s *Server) recordExists(kind kernel.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		query, err := queries.NewRecordExistsQuery(kind, id)
		if err != nil {
			return apierr.FromError(err)
		}
		exists, err := s.handlers.RecordExists.Handle(c.Request().Context(), query)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
	}
}

func (s *Server) transferRecord(kind kernel.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		var req TransferRequest
		if err = bindBody(c, &req, nil, ""); err != nil {
			return err
		}

		cmd, err := commands.NewTransferRecordCommand(kind, id, req.NewOwner)
		if err != nil {
			return apierr.FromError(err)
		}
		previous, err := s.handlers.TransferRecord.Handle(c.Request().Context(), cmd)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, TransferResponse{NewOwner: req.NewOwner, PreviousOwner: previous})
	}
}
