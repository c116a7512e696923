// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"meliyah/database"
	"meliyah/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository backed by MongoDB.
type MongoCatalogRepo struct {
	services  *mongo.Collection
	packages  *mongo.Collection
	employees *mongo.Collection
	products  *mongo.Collection
	salonInfo *mongo.Collection
}

// NewMongoCatalogRepo returns a catalog repository bound to the default DB.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	db := database.DB()
	return &MongoCatalogRepo{
		services:  db.Collection("services"),
		packages:  db.Collection("packages"),
		employees: db.Collection("employees"),
		products:  db.Collection("products"),
		salonInfo: db.Collection("salon_info"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func listAll[T any](coll *mongo.Collection, entity string) ([]T, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", entity, err)
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", entity, err)
	}
	return out, nil
}

func getByID[T any](coll *mongo.Collection, entity, id string) (*T, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var out T
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&out); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s with id %s not found", entity, id)
		}
		return nil, fmt.Errorf("failed to fetch %s %s: %w", entity, id, err)
	}
	return &out, nil
}

func (r *MongoCatalogRepo) ListServices() ([]models.Service, error) {
	return listAll[models.Service](r.services, "services")
}

func (r *MongoCatalogRepo) GetService(id string) (*models.Service, error) {
	return getByID[models.Service](r.services, "service", id)
}

func (r *MongoCatalogRepo) ListPackages() ([]models.Package, error) {
	return listAll[models.Package](r.packages, "packages")
}

func (r *MongoCatalogRepo) GetPackage(id string) (*models.Package, error) {
	return getByID[models.Package](r.packages, "package", id)
}

func (r *MongoCatalogRepo) ListEmployees() ([]models.Employee, error) {
	return listAll[models.Employee](r.employees, "employees")
}

func (r *MongoCatalogRepo) GetEmployee(id string) (*models.Employee, error) {
	return getByID[models.Employee](r.employees, "employee", id)
}

func (r *MongoCatalogRepo) ListProducts() ([]models.Product, error) {
	return listAll[models.Product](r.products, "products")
}

func (r *MongoCatalogRepo) GetProduct(id string) (*models.Product, error) {
	return getByID[models.Product](r.products, "product", id)
}

func (r *MongoCatalogRepo) GetSalonInfo() (*models.SalonInfo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var info models.SalonInfo
	if err := r.salonInfo.FindOne(ctx, bson.M{}).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to fetch salon info: %w", err)
	}
	return &info, nil
}
