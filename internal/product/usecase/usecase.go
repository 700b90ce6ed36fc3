package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	attrdto "github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/search"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	indexName       = "products"
	cacheKeyPrefix  = "products:list:"
	maxSearchHits   = 10000
	defaultCacheTTL = 5 * time.Minute
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"name":     { "type": "keyword" },
			"sku":      { "type": "keyword" },
			"category": { "type": "keyword" }
		}
	}
}`

type productUseCase struct {
	repo       product.Repository
	inventory  inventory.UseCase
	attributes attribute.UseCase
	cache      *cache.RedisClient
	es         *search.Client
	cacheTTL   time.Duration
	logger     logger.ZapLogger

	// indexTrusted is set by a complete SyncSearchIndex and cleared by any
	// failed index write. Searches only narrow the store while it is set.
	indexTrusted atomic.Bool
}

type Options struct {
	Cache    *cache.RedisClient
	Search   *search.Client
	CacheTTL time.Duration
}

func NewProductUseCase(repo product.Repository, inv inventory.UseCase, attrs attribute.UseCase, opts Options, log logger.ZapLogger) product.UseCase {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &productUseCase{
		repo:       repo,
		inventory:  inv,
		attributes: attrs,
		cache:      opts.Cache,
		es:         opts.Search,
		cacheTTL:   opts.CacheTTL,
		logger:     log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      strings.TrimSpace(input.Name),
		SKU:       strings.TrimSpace(input.SKU),
		Category:  strings.TrimSpace(input.Category),
		Price:     input.Price,
		Cost:      input.Cost,
	}
	if s := strings.TrimSpace(input.Supplier); s != "" {
		p.Supplier = &s
	}

	rows, err := uc.attributes.ValidateValues(ctx, &attrdto.InsertAttributeValuesRequest{
		ProductID: p.ID,
		Values:    input.Attributes,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Error("failed to create product", zap.String("sku", p.SKU), zap.Error(err))
		return nil, err
	}

	if len(rows) > 0 {
		if err := uc.attributes.SaveValues(ctx, rows); err != nil {
			// Roll the product back so a failed create leaves nothing behind.
			if derr := uc.repo.Delete(ctx, p.ID); derr != nil {
				uc.logger.Error("failed to roll back product", zap.String("product_id", p.ID), zap.Error(derr))
			}
			return nil, err
		}
	}

	uc.invalidateCache(ctx)
	uc.indexProduct(ctx, p)

	return p, nil
}

func validateCreate(input *dto.CreateProductInput) error {
	if len(strings.TrimSpace(input.Name)) < 2 {
		return apperror.Validation("product.name_required", "name", "name must be at least 2 characters")
	}
	if len(strings.TrimSpace(input.SKU)) < 2 {
		return apperror.Validation("product.sku_required", "sku", "sku must be at least 2 characters")
	}
	if len(strings.TrimSpace(input.Category)) < 2 {
		return apperror.Validation("product.category_required", "category", "category must be at least 2 characters")
	}
	if !input.Price.GreaterThan(decimal.Zero) {
		return apperror.Validation("product.invalid_price", "price", "price must be greater than 0")
	}
	if !input.Cost.GreaterThan(decimal.Zero) {
		return apperror.Validation("product.invalid_cost", "cost", "cost must be greater than 0")
	}
	return nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.ProductView, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("products.get")
	}

	views := uc.buildViews(ctx, []model.Product{*p})
	return &views[0], nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductView, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}

	storeFilters := &dto.ProductFilters{}
	if filters.SearchTerm != "" {
		if ids, ok := uc.searchIDs(ctx, filters.SearchTerm); ok {
			storeFilters.IDs = ids
		}
	}

	products, err := uc.loadProducts(ctx, storeFilters)
	if err != nil {
		return nil, err
	}

	views := uc.buildViews(ctx, products)
	return product.Filter(views, filters.SearchTerm, product.NewCategorySelection(filters.Categories...)), nil
}

func (uc *productUseCase) ListCategories(ctx context.Context) ([]string, error) {
	products, err := uc.loadProducts(ctx, &dto.ProductFilters{})
	if err != nil {
		return nil, err
	}
	views := make([]model.ProductView, len(products))
	for i, p := range products {
		views[i].Product = p
	}
	return product.Categories(views), nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateCache(ctx)
	if uc.es != nil {
		if err := uc.es.Delete(ctx, indexName, id); err != nil {
			uc.indexTrusted.Store(false)
			uc.logger.Error("failed to delete product from ES, search narrowing disabled", zap.String("product_id", id), zap.Error(err))
		}
	}
	return nil
}

func (uc *productUseCase) SyncSearchIndex(ctx context.Context) error {
	if uc.es == nil {
		return nil
	}
	uc.indexTrusted.Store(false)
	if err := uc.es.CreateIndex(ctx, indexName, indexMapping); err != nil {
		return err
	}
	products, err := uc.repo.FindAll(ctx, &dto.ProductFilters{})
	if err != nil {
		return err
	}
	for i := range products {
		if err := uc.es.Index(ctx, indexName, products[i].ID, searchDoc(&products[i])); err != nil {
			return err
		}
	}
	uc.indexTrusted.Store(true)
	uc.logger.Info("search index synced", zap.Int("products", len(products)))
	return nil
}

// buildViews joins stock totals and attributes onto products. Neither join can
// fail the listing: stock degrades per product, attributes degrade to none.
func (uc *productUseCase) buildViews(ctx context.Context, products []model.Product) []model.ProductView {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	totals := uc.inventory.AggregateStock(ctx, ids)
	merged := uc.mergedAttributes(ctx)

	views := make([]model.ProductView, len(products))
	for i, p := range products {
		qty := totals[p.ID]
		views[i] = model.ProductView{
			Product:    p,
			InStock:    qty,
			StockLevel: uc.inventory.Classify(qty),
			Attributes: merged[p.ID],
		}
	}
	return views
}

func (uc *productUseCase) mergedAttributes(ctx context.Context) map[string]map[string]string {
	attrs, err := uc.attributes.ListAttributes(ctx)
	if err != nil {
		uc.logger.Warn("attribute definitions unavailable", zap.Error(err))
		return nil
	}
	values, err := uc.attributes.ListValues(ctx)
	if err != nil {
		uc.logger.Warn("attribute values unavailable", zap.Error(err))
		return nil
	}
	return attribute.MergeAll(attrs, values)
}

func (uc *productUseCase) loadProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" && uc.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := uc.cache.Client.Set(ctx, cacheKey, data, uc.cacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache product list", zap.Error(err))
			}
		}
	}
	return products, nil
}

// searchIDs asks the index for candidate ids. ok is false when the caller must
// fall back to a full scan: no trusted index, an index holding a different
// number of products than the store, a failed query or a truncated hit list.
func (uc *productUseCase) searchIDs(ctx context.Context, term string) (ids []string, ok bool) {
	if uc.es == nil || !uc.indexTrusted.Load() {
		return nil, false
	}

	indexed, err := uc.es.Count(ctx, indexName)
	if err != nil {
		uc.logger.Warn("ES count failed, falling back to DB", zap.Error(err))
		return nil, false
	}
	stored, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, false
	}
	if indexed != stored {
		uc.logger.Warn("search index out of step with store, falling back to DB",
			zap.Int("indexed", indexed),
			zap.Int("stored", stored),
		)
		return nil, false
	}

	pattern := "*" + wildcardEscaper.Replace(term) + "*"
	should := make([]map[string]any, 0, 3)
	for _, field := range []string{"name", "sku", "category"} {
		should = append(should, map[string]any{
			"wildcard": map[string]any{
				field: map[string]any{"value": pattern, "case_insensitive": true},
			},
		})
	}
	q := map[string]any{
		"size":             maxSearchHits,
		"_source":          false,
		"track_total_hits": true,
		"query": map[string]any{
			"bool": map[string]any{"should": should, "minimum_should_match": 1},
		},
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
		return nil, false
	}
	if res.Hits.Total.Value > len(res.Hits.Hits) {
		return nil, false
	}

	ids = make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, true
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", cacheKeyPrefix, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteByPattern(ctx, cacheKeyPrefix+"*"); err != nil {
		uc.logger.Warn("failed to invalidate product cache", zap.Error(err))
	}
}

// indexProduct writes p to the index. A failed write leaves the index untrusted
// until the next full sync; the create itself still succeeds.
func (uc *productUseCase) indexProduct(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	if err := uc.es.Index(ctx, indexName, p.ID, searchDoc(p)); err != nil {
		uc.indexTrusted.Store(false)
		uc.logger.Error("failed to index product, search narrowing disabled", zap.String("product_id", p.ID), zap.Error(err))
	}
}

type searchDocument struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

func searchDoc(p *model.Product) searchDocument {
	return searchDocument{Name: p.Name, SKU: p.SKU, Category: p.Category}
}
