package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/models"
	"tourgate/services/report"
	"tourgate/services/resolver"
	"tourgate/utils"
)

func listOfferings(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerings, err := svc.Offerings(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, offerings)
	}
}

func getOffering(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		offering, err := svc.OfferingByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if offering == nil {
			notFound(c, "offering")
			return
		}
		c.JSON(http.StatusOK, offering)
	}
}

func offeringsByType(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerings, err := svc.OfferingsByType(c.Request.Context(), c.Param("type"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, offerings)
	}
}

func createOffering(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.OfferingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		id, err := svc.CreateOffering(c.Request.Context(), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func updateOffering(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.OfferingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		offering, err := svc.UpdateOffering(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, offering)
	}
}

func deleteOffering(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteOffering(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
	}
}

func listContracts(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contracts, err := svc.Contracts(c.Request.Context(), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contracts)
	}
}

func getContract(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contract, err := svc.ContractByID(c.Request.Context(), c.Param("id"), expandParam(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if contract == nil {
			notFound(c, "contract")
			return
		}
		c.JSON(http.StatusOK, contract)
	}
}

func contractsByOffering(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contracts, err := svc.ContractsByOffering(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contracts)
	}
}

func contractsByUser(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contracts, err := svc.ContractsByUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contracts)
	}
}

func createContract(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ContractInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		id, err := svc.CreateContract(c.Request.Context(), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func updateContract(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ContractInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		contract, err := svc.UpdateContract(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract)
	}
}

func cancelContract(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contract, err := svc.CancelContract(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, contract)
	}
}

func offeringStats(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rep.OfferingStats(c.Request.Context()))
	}
}

func contractStats(rep report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rep.ContractStats(c.Request.Context(), c.Query("start"), c.Query("end")))
	}
}
