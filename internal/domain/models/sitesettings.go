// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is the site name used when site_name is not configured.
const DefaultSiteName = "C# Learning Hub"

// DefaultTagline is shown under the site name in the page header.
const DefaultTagline = "Master C# from basics to advanced concepts"
