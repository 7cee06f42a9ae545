package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/hesabdar/internal/apperrors"
	"github.com/SscSPs/hesabdar/internal/core/domain"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// uploadRequest builds a multipart receipt upload. An empty filename omits the file part.
func (suite *HandlerTestSuite) uploadRequest(filename string, content []byte, text string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		suite.Require().NoError(err)
		_, err = part.Write(content)
		suite.Require().NoError(err)
	}
	if text != "" {
		suite.Require().NoError(mw.WriteField("text", text))
	}
	suite.Require().NoError(mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/ocr/receipts", &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token())
	return req
}

func (suite *HandlerTestSuite) TestUploadReceipt_StoresFileAndParses() {
	text := "فروشگاه رفاه\nجمع کل: 165,000 ریال"
	receiptsDir := filepath.Join(suite.cfg.UploadDir, "receipts")
	amount := decimal.NewFromInt(165000)

	suite.receipts.On("IngestReceipt", mock.Anything, mock.MatchedBy(func(u dto.ReceiptUpload) bool {
		if !strings.HasPrefix(u.StoredPath, receiptsDir) || filepath.Ext(u.StoredPath) != ".jpg" {
			return false
		}
		if _, err := os.Stat(u.StoredPath); err != nil {
			return false
		}
		return u.OriginalName == "Receipt.JPG" && u.Text == text
	})).Return(&dto.ReceiptResponse{Success: true, ReceiptID: 4, Amount: &amount}, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.uploadRequest("Receipt.JPG", []byte("fake image"), text))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ReceiptResponse
	suite.decode(w, &resp)
	suite.Equal(int64(4), resp.ReceiptID)
	suite.True(resp.Amount.Equal(amount))
}

func (suite *HandlerTestSuite) TestUploadReceipt_MissingFile() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.uploadRequest("", nil, "some text"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUploadReceipt_TooLarge() {
	big := bytes.Repeat([]byte("x"), int(suite.cfg.MaxUploadSize)+1024)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.uploadRequest("scan.pdf", big, ""))

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
}

func (suite *HandlerTestSuite) TestUploadReceipt_UnreadablePDF() {
	suite.receipts.On("IngestReceipt", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: could not read PDF", apperrors.ErrValidation)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.uploadRequest("scan.pdf", []byte("not a pdf"), ""))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListReceipts() {
	suite.receipts.On("ListReceipts", mock.Anything, 10, 20).Return([]domain.Receipt{{ReceiptID: 1}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ocr/receipts?limit=10&offset=20", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListReceiptsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Receipts, 1)
}

func (suite *HandlerTestSuite) TestCreateEntryFromReceipt() {
	suite.Run("confirmed", func() {
		suite.receipts.On("ConfirmReceipt", mock.Anything, int64(4), mock.Anything).
			Return(&domain.JournalEntry{JournalEntryID: 21, EntryNumber: "JE-000021", Source: domain.SourceOCR}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/ocr/receipts/4/create-entry", entryBody(165000, 165000))

		suite.Equal(http.StatusCreated, w.Code)
		suite.Contains(w.Body.String(), `"source":"ocr"`)
	})

	suite.Run("already processed", func() {
		suite.receipts.On("ConfirmReceipt", mock.Anything, int64(5), mock.Anything).
			Return(nil, fmt.Errorf("%w: receipt 5 already processed", apperrors.ErrValidation)).Once()

		w := suite.do(http.MethodPost, "/api/v1/ocr/receipts/5/create-entry", entryBody(1, 1))

		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("missing receipt", func() {
		suite.receipts.On("ConfirmReceipt", mock.Anything, int64(6), mock.Anything).
			Return(nil, fmt.Errorf("%w: receipt 6", apperrors.ErrNotFound)).Once()

		w := suite.do(http.MethodPost, "/api/v1/ocr/receipts/6/create-entry", entryBody(1, 1))

		suite.Equal(http.StatusNotFound, w.Code)
	})
}
