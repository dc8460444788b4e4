package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/helper"
	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/upload"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	maxLogoSize = 2 << 20
	filesPrefix = "/files/"
)

// =======API Handlers=======

// UploadLogo stores a company logo and points the company's logo_url at it.
func (m *AdminHandler) UploadLogo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "Invalid company id")
	}

	ctx := c.Request().Context()
	company, err := m.store.Companies.SelectCompany(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return renderPopupOrJson(c, http.StatusNotFound, "Company not found")
	} else if err != nil {
		m.logger.Error("Failed to load company", "id", id, "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to load company")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "No logo found in the request")
	}
	if fileHeader.Size > maxLogoSize {
		return renderPopupOrJson(c, http.StatusBadRequest, "Logo must be smaller than 2 MB")
	}

	logoPath, err := upload.LogoPath(company.ID, fileHeader.Filename)
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "Logo must be an image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to open file %s: %v", fileHeader.Filename, err))
	}
	defer file.Close()

	err = m.filesystem.Write(ctx, logoPath, file, fileHeader.Size)
	if err != nil {
		m.logger.Error("Failed to save logo", "path", logoPath, "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to save logo")
	}

	_, err = m.store.Companies.UpdateCompany(ctx, company.ID, model.DataMap{"logo_url": filesPrefix + logoPath})
	if err != nil {
		m.logger.Error("Failed to update logo url", "id", company.ID, "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to update company")
	}

	c.Response().Header().Add("HX-Refresh", "true")

	return renderPopupOrJson(c, http.StatusOK, "Logo uploaded")
}

// ServeFile streams an uploaded file.
func (m *AdminHandler) ServeFile(c echo.Context) error {
	filePath, err := upload.CleanPath(c.Param("*"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid path")
	}

	reader, err := m.filesystem.Open(c.Request().Context(), filePath)
	if errors.Is(err, upload.ErrFileNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	} else if err != nil {
		m.logger.Error("Failed to open file", "path", filePath, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open file")
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=300")
	return c.Stream(http.StatusOK, helper.GetMimeType(filePath), reader)
}

// GetFiles lists the uploaded files.
func (m *AdminHandler) GetFiles(c echo.Context) error {
	files, err := m.filesystem.ListFiles(c.Request().Context())
	if err != nil {
		m.logger.Error("Failed to list files", "error", err)
		return renderPopupOrJson(c, http.StatusInternalServerError, "Failed to list files")
	}
	return c.JSON(http.StatusOK, files)
}
