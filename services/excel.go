package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/store"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

const productsSheet = "Products"

var excelHeaders = []string{
	"Code", "Category", "Name", "Description", "Price", "Tax",
	"PublicSellPrice", "Stock", "Image", "CreatedAt", "UpdatedAt",
}

// importColumns is the number of leading columns Import reads.
const importColumns = 8

type ImportResult struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// Export writes every product as one row of an xlsx workbook.
func (s *Products) Export(ctx context.Context, w io.Writer) error {
	const op = "exportProducts"
	items, _, err := s.store.Products().List(ctx, store.ProductFilter{}, store.Window{})
	if err != nil {
		return s.readFailed(op, entityProduct, err)
	}
	s.populate(ctx, items)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(productsSheet)
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range excelHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range items {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.Code)
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		row.AddCell().SetValue(category)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price.String())
		row.AddCell().SetValue(p.Tax.String())
		row.AddCell().SetValue(p.PublicSellPrice.String())
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}

// Import upserts products by code from the first sheet of an xlsx workbook
// laid out like Export. Rows with a missing code or name, an unknown category
// or a bad number are skipped.
func (s *Products) Import(ctx context.Context, r io.ReaderAt, size int64) (*ImportResult, error) {
	const op = "importProducts"
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, invalidf(entityProduct, "", "Failed to parse Excel file")
	}
	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 2 {
		return nil, invalidf(entityProduct, "", "Excel file is empty or missing header row")
	}

	res := &ImportResult{}
	sheet := file.Sheets[0]
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]
		if row == nil || len(row.Cells) < importColumns {
			res.Skipped++
			continue
		}
		in, ok := rowInput(row)
		if !ok {
			res.Skipped++
			continue
		}
		category := s.categories.Find(ctx, in.Category.Name)
		if category == nil {
			res.Skipped++
			continue
		}

		code := normalizeCode(in.Code)
		p := lookup(ctx, s.base, op, func(ctx context.Context) (*models.Product, error) {
			return s.store.Products().FindByCode(ctx, code)
		})
		if p != nil {
			apply(p, in, category)
			if err := s.store.Products().Update(ctx, p); err != nil {
				if werr := s.writeFailed(op, entityProduct, code, err); errors.Is(werr, ErrPersistence) {
					return res, werr
				}
				res.Skipped++
				continue
			}
			res.Updated++
			continue
		}

		p = &models.Product{ID: uuid.NewString(), Code: code}
		apply(p, in, category)
		if err := s.store.Products().Create(ctx, p); err != nil {
			if werr := s.writeFailed(op, entityProduct, code, err); errors.Is(werr, ErrPersistence) {
				return res, werr
			}
			res.Skipped++
			continue
		}
		res.Created++
	}

	s.log.Info().Str("op", op).Int("created", res.Created).Int("updated", res.Updated).Int("skipped", res.Skipped).Msg("products imported")
	if res.Created+res.Updated > 0 {
		s.notifier.Changed(notify.Products)
	}
	return res, nil
}

func rowInput(row *xlsx.Row) (ProductInput, bool) {
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	in := ProductInput{
		Code:        get(0),
		Category:    CategoryRef{Name: get(1)},
		Name:        get(2),
		Description: get(3),
	}
	if in.Code == "" || in.Name == "" {
		return in, false
	}

	var err error
	if in.Price, err = decimal.NewFromString(get(4)); err != nil {
		return in, false
	}
	if in.Tax, err = decimal.NewFromString(get(5)); err != nil {
		return in, false
	}
	if in.PublicSellPrice, err = decimal.NewFromString(get(6)); err != nil {
		return in, false
	}
	stock, err := strconv.Atoi(get(7))
	if err != nil || stock < 0 {
		return in, false
	}
	in.Stock = stock
	return in, true
}
