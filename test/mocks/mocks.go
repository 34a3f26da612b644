// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/look_repository.go -destination=look_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/look_service.go -destination=look_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/draft_store.go -destination=draft_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/session_store.go -destination=session_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/session_service.go -destination=session_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/catalog_service.go -destination=catalog_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/upstream.go -destination=upstream_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/viewstate.go -destination=viewstate_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/documents.go -destination=documents_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/reports.go -destination=reports_mock.go -package=mocks
//go:generate mockgen -source=../../internal/adapters/storage/s3.go -destination=storage_mock.go -package=mocks
