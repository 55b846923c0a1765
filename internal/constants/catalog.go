package constants

type (
	SearchType  string
	PackageType string
)

const (
	SearchTypeFlight  SearchType = "FLIGHT"
	SearchTypeHotel   SearchType = "HOTEL"
	SearchTypePackage SearchType = "PACKAGE"

	PackagePreBuilt     PackageType = "PRE_BUILT"
	PackageCustomizable PackageType = "CUSTOMIZABLE"
)
