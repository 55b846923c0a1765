package repositories

import (
	"context"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// GormTravelPackageRepository handles travel_packages table operations
type GormTravelPackageRepository struct {
	db *gormlib.DB
}

func NewGormTravelPackageRepository(db *gormlib.DB) *GormTravelPackageRepository {
	return &GormTravelPackageRepository{db: db}
}

func (r *GormTravelPackageRepository) FindByID(ctx context.Context, id string) (*entities.TravelPackage, error) {
	var row gorm.TravelPackage

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	pkg := row.ToEntity()
	return &pkg, nil
}

func (r *GormTravelPackageRepository) FindActive(ctx context.Context) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where("is_active = ?", true))
}

func (r *GormTravelPackageRepository) FindByDestinationContaining(ctx context.Context, destination string) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where(likeClause("destination"), containsLike(destination)))
}

func (r *GormTravelPackageRepository) FindByType(ctx context.Context, packageType constants.PackageType) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where("package_type = ?", string(packageType)))
}

func (r *GormTravelPackageRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where("discounted_price BETWEEN ? AND ?", minPrice, maxPrice))
}

func (r *GormTravelPackageRepository) FindByDurationRange(ctx context.Context, minDuration, maxDuration int) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where("duration BETWEEN ? AND ?", minDuration, maxDuration))
}

func (r *GormTravelPackageRepository) FindByNameContaining(ctx context.Context, name string) ([]entities.TravelPackage, error) {
	return r.find(r.db.WithContext(ctx).Where(likeClause("package_name"), containsLike(name)))
}

func (r *GormTravelPackageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.TravelPackage{}).Count(&count).Error
	return count, err
}

func (r *GormTravelPackageRepository) Save(ctx context.Context, pkg *entities.TravelPackage) error {
	row := gorm.TravelPackageFromEntity(pkg)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	pkg.ID = row.ID
	return nil
}

func (r *GormTravelPackageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gorm.TravelPackage{}).Error
}

func (r *GormTravelPackageRepository) find(query *gormlib.DB) ([]entities.TravelPackage, error) {
	var rows []gorm.TravelPackage
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	packages := make([]entities.TravelPackage, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, row.ToEntity())
	}
	return packages, nil
}

var _ TravelPackageRepository = (*GormTravelPackageRepository)(nil)
