package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	marketv1 "github.com/simaogato/marketfolio-backend/internal/adapter/grpc/market/v1"
)

// Gateway exposes the MarketService over HTTP/JSON for browser clients.
// Handlers translate the route into the gRPC request message and call the
// service implementation in-process.
type Gateway struct {
	Service  marketv1.MarketServiceServer
	APIToken string
}

// NewGateway creates a gateway in front of svc
func NewGateway(svc marketv1.MarketServiceServer, apiToken string) *Gateway {
	return &Gateway{Service: svc, APIToken: apiToken}
}

// entryBody is the JSON body of entry and modal submissions; numbers may be sent as JSON numbers
type entryBody struct {
	ID          string      `json:"id"`
	BoughtPrice json.Number `json:"boughtPrice"`
	Quantity    json.Number `json:"quantity"`
}

// NewApp builds the fiber application with every route registered
func (g *Gateway) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "marketfolio",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api", g.requireToken)
	api.Post("/accounts", g.createAccount)

	account := api.Group("/accounts/:accountId")
	account.Get("/market", g.getMarket)
	account.Post("/investments/:itemId/entries", g.addEntry)
	account.Put("/investments/:itemId/entries/:entryId", g.editEntry)
	account.Delete("/investments/:itemId/entries/:entryId", g.removeEntry)
	account.Post("/wishlist/:itemId", g.toggleWishlist)
	account.Get("/investments", g.listInvestmentRows)
	account.Get("/investments/:itemId", g.getInvestmentRow)
	account.Get("/items", g.listItems)
	account.Get("/summary", g.getPortfolioSummary)

	account.Get("/modal", g.getModal)
	account.Delete("/modal", g.closeModal)
	account.Post("/modal/add/:itemId", g.openAddModal)
	account.Post("/modal/edit/:itemId/:entryId", g.openEditModal)
	account.Post("/modal/submit", g.submitModal)

	return app
}

func (g *Gateway) requireToken(c *fiber.Ctx) error {
	token := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
	}
	if token != g.APIToken {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}
	return c.Next()
}

func (g *Gateway) createAccount(c *fiber.Ctx) error {
	var req marketv1.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	resp, err := g.Service.CreateAccount(c.UserContext(), &req)
	return respond(c, fiber.StatusCreated, resp, err)
}

func (g *Gateway) getMarket(c *fiber.Ctx) error {
	resp, err := g.Service.GetMarket(c.UserContext(), &marketv1.GetMarketRequest{AccountId: c.Params("accountId")})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) addEntry(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}
	body, err := parseEntryBody(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.AddEntry(c.UserContext(), &marketv1.AddEntryRequest{
		AccountId:   c.Params("accountId"),
		ItemId:      itemID,
		EntryId:     body.ID,
		BoughtPrice: body.BoughtPrice.String(),
		Quantity:    body.Quantity.String(),
	})
	return respond(c, fiber.StatusCreated, resp, err)
}

func (g *Gateway) editEntry(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}
	body, err := parseEntryBody(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.EditEntry(c.UserContext(), &marketv1.EditEntryRequest{
		AccountId:   c.Params("accountId"),
		ItemId:      itemID,
		EntryId:     c.Params("entryId"),
		BoughtPrice: body.BoughtPrice.String(),
		Quantity:    body.Quantity.String(),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) removeEntry(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.RemoveEntry(c.UserContext(), &marketv1.RemoveEntryRequest{
		AccountId: c.Params("accountId"),
		ItemId:    itemID,
		EntryId:   c.Params("entryId"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) toggleWishlist(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.ToggleWishlist(c.UserContext(), &marketv1.ToggleWishlistRequest{
		AccountId: c.Params("accountId"),
		ItemId:    itemID,
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) listInvestmentRows(c *fiber.Ctx) error {
	resp, err := g.Service.ListInvestmentRows(c.UserContext(), &marketv1.ListInvestmentRowsRequest{
		AccountId: c.Params("accountId"),
		Language:  c.Query("lang"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) getInvestmentRow(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.GetInvestmentRow(c.UserContext(), &marketv1.GetInvestmentRowRequest{
		AccountId: c.Params("accountId"),
		ItemId:    itemID,
		Language:  c.Query("lang"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) listItems(c *fiber.Ctx) error {
	resp, err := g.Service.ListItems(c.UserContext(), &marketv1.ListItemsRequest{
		AccountId: c.Params("accountId"),
		Language:  c.Query("lang"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) getPortfolioSummary(c *fiber.Ctx) error {
	resp, err := g.Service.GetPortfolioSummary(c.UserContext(), &marketv1.GetPortfolioSummaryRequest{
		AccountId: c.Params("accountId"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) getModal(c *fiber.Ctx) error {
	resp, err := g.Service.GetModal(c.UserContext(), &marketv1.GetModalRequest{AccountId: c.Params("accountId")})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) closeModal(c *fiber.Ctx) error {
	resp, err := g.Service.CloseModal(c.UserContext(), &marketv1.CloseModalRequest{AccountId: c.Params("accountId")})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) openAddModal(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.OpenAddModal(c.UserContext(), &marketv1.OpenAddModalRequest{
		AccountId: c.Params("accountId"),
		ItemId:    itemID,
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) openEditModal(c *fiber.Ctx) error {
	itemID, err := itemParam(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.OpenEditModal(c.UserContext(), &marketv1.OpenEditModalRequest{
		AccountId: c.Params("accountId"),
		ItemId:    itemID,
		EntryId:   c.Params("entryId"),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func (g *Gateway) submitModal(c *fiber.Ctx) error {
	body, err := parseEntryBody(c)
	if err != nil {
		return err
	}

	resp, err := g.Service.SubmitModal(c.UserContext(), &marketv1.SubmitModalRequest{
		AccountId:   c.Params("accountId"),
		BoughtPrice: body.BoughtPrice.String(),
		Quantity:    body.Quantity.String(),
	})
	return respond(c, fiber.StatusOK, resp, err)
}

func itemParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("itemId")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "itemId must be a positive integer")
	}
	return int64(id), nil
}

func parseEntryBody(c *fiber.Ctx) (entryBody, error) {
	var body entryBody
	if err := c.BodyParser(&body); err != nil {
		return entryBody{}, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return body, nil
}

// respond writes resp with okStatus, or the HTTP translation of a gRPC status error
func respond(c *fiber.Ctx, okStatus int, resp any, err error) error {
	if err != nil {
		st := status.Convert(err)
		return fiber.NewError(httpStatus(st.Code()), st.Message())
	}
	return c.Status(okStatus).JSON(resp)
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
