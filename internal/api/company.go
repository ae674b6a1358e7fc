package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type CompanyHandler struct {
	companyService service.ICompanyService
	authService    *service.AuthService
}

func NewCompanyHandler(companyService service.ICompanyService, authService *service.AuthService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		authService:    authService,
	}
}

func (h *CompanyHandler) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListCompanies)
		companies.GET("/:id", middleware.OptionalAuthMiddleware(h.authService), h.GetCompany)
		companies.POST("", middleware.AuthMiddleware(h.authService), h.CreateCompany)
		companies.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateCompany)
		companies.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteCompany)
	}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context(), c.Query("ordering"))
	if err != nil {
		respondError(c, err)
		return
	}

	identity := identityFrom(c)
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = newCompanyResponse(&companies[i], identity)
	}

	c.JSON(http.StatusOK, gin.H{"companies": responses})
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCompanyResponse(company, identityFrom(c)))
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req types.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCompanyResponse(company, &userID))
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCompanyResponse(company, &userID))
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
