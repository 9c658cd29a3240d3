package handlers

import (
	"net/http"

	customerRepo "garagat/database/repository/customer"
	"garagat/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the read-only inputs of the booking wizard.
type CustomerHandler struct {
	Repo customerRepo.CustomerRepository
}

func NewCustomerHandler(repo customerRepo.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

func (h *CustomerHandler) GetVehiclesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Customer not authenticated", "")
		return
	}
	vehicles, err := h.Repo.GetVehicles(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *CustomerHandler) GetAddressesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Customer not authenticated", "")
		return
	}
	addresses, err := h.Repo.GetAddresses(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}
