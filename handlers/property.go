package handlers

import (
	"AsylenBackend/models"
	"AsylenBackend/utils"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

const listLimit = 50

type PropertyController struct {
	store      Store
	collection string
}

func NewPropertyController(store Store) *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTY")
	if collectionName == "" {
		collectionName = "property"
	}
	return &PropertyController{
		store:      store,
		collection: collectionName,
	}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	city := c.QueryParam("city")

	var featured *bool
	if v := c.QueryParam("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "featured must be a boolean"})
		}
		featured = &b
	}

	return pc.listProperties(c, city, featured)
}

func (pc *PropertyController) FeaturedProperties(c echo.Context) error {
	featured := true
	return pc.listProperties(c, "", &featured)
}

func (pc *PropertyController) listProperties(c echo.Context, city string, featured *bool) error {
	ctx := c.Request().Context()

	if !pc.store.Available() {
		// Curated demo listings; query filters are not applied here.
		return c.JSON(http.StatusOK, models.DemoProperties())
	}

	var cacheKey string
	if utils.RedisClient != nil {
		params := map[string]string{"city": city}
		if featured != nil {
			params["featured"] = strconv.FormatBool(*featured)
		}
		cacheKey = utils.GenerateQueryCacheKey("properties", params)

		var cached []models.Property
		if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
			return c.JSON(http.StatusOK, cached)
		}
	}

	query := bson.M{}
	if city != "" {
		query["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(city) + "$", "$options": "i"}
	}
	if featured != nil {
		query["featured"] = *featured
	}

	docs, err := pc.store.GetDocuments(ctx, pc.collection, query, listLimit)
	if err != nil {
		docs = nil
	}
	if len(docs) == 0 {
		// Seed the collection the first time it comes up empty. Insert
		// failures are swallowed per record.
		for _, p := range models.DemoProperties() {
			if _, err := pc.store.CreateDocument(ctx, pc.collection, p); err != nil {
				continue
			}
		}
		docs, _ = pc.store.GetDocuments(ctx, pc.collection, query, listLimit)
	}

	properties := make([]models.Property, 0, len(docs))
	for _, doc := range docs {
		property, err := models.PropertyFromDocument(doc)
		if err != nil {
			continue
		}
		properties = append(properties, property)
	}

	if utils.RedisClient != nil {
		_ = utils.SetCached(ctx, cacheKey, properties, 5*time.Minute)
	}

	return c.JSON(http.StatusOK, properties)
}
