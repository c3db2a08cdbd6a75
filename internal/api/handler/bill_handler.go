package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billed/expense-api/internal/core/ports"
)

// BillHandler handles HTTP requests for the employee bill pipeline.
type BillHandler struct {
	submissions ports.SubmissionService
	listings    ports.ListingService
	receipts    ports.ReceiptStore
}

func NewBillHandler(submissions ports.SubmissionService, listings ports.ListingService, receipts ports.ReceiptStore) *BillHandler {
	return &BillHandler{submissions: submissions, listings: listings, receipts: receipts}
}

// UploadReceipt handles POST /v1/bills/receipt — the create phase.
//
// @Summary      Upload a receipt image and create the bill placeholder
// @Tags         bills
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Receipt image (jpg, jpeg or png)"
// @Success      201   {object}  uploadReceiptResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/bills/receipt [post]
func (h *BillHandler) UploadReceipt(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	result, err := h.submissions.SelectReceipt(c.Request().Context(), ports.SelectReceiptInput{
		FileName: fileHeader.Filename,
		Content:  src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadReceiptResponse{
		Key:      result.Key,
		FileURL:  result.FileURL,
		FileName: result.FileName,
	})
}

// Submit handles POST /v1/bills — the update phase.
//
// @Summary      Submit the bill form against the uploaded receipt
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitBillRequest  true  "Bill fields"
// @Success      200   {object}  submitBillResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/bills [post]
func (h *BillHandler) Submit(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	var req submitBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.submissions.Submit(c.Request().Context(), ports.SubmitBillInput{
		Type:       req.Type,
		Name:       req.Name,
		Amount:     req.Amount,
		Date:       req.Date,
		Vat:        req.Vat,
		Pct:        req.Pct,
		Commentary: req.Commentary,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, submitBillResponse{
		Bill:     toBillResponse(result.Bill),
		Redirect: result.Redirect,
	})
}

// List handles GET /v1/bills.
//
// @Summary      List the connected employee's bills, newest first
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBillsResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/bills [get]
func (h *BillHandler) List(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	items, err := h.listings.GetBills(c.Request().Context())
	if err != nil {
		return err
	}

	sortAntiChronological(items)

	return c.JSON(http.StatusOK, listBillsResponse{Data: toBillItemResponses(items)})
}

// DownloadReceipt handles GET /v1/bills/receipt/:key.
//
// @Summary      Stream a stored receipt image
// @Tags         bills
// @Produce      image/png
// @Param        key  path      string  true  "Receipt key"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /v1/bills/receipt/{key} [get]
func (h *BillHandler) DownloadReceipt(c echo.Context) error {
	stream, file, err := h.receipts.Open(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	defer stream.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", file.FileName))
	return c.Stream(http.StatusOK, file.ContentType, stream)
}
