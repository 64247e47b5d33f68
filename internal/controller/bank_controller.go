package controller

import (
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type BankController struct {
	BankService *service.BankService
	ExamService *service.ExamService
}

func NewBankController(bankService *service.BankService, examService *service.ExamService) *BankController {
	return &BankController{
		BankService: bankService,
		ExamService: examService,
	}
}

// UploadBank godoc
// @Summary Upload a question bank
// @Description Accepts a .json bank or a .zip archive with the bank JSON
// @Description and its images; entries upsert by external question id
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "bank file (.json or .zip)"
// @Success 200 {object} util.Response{data=service.ImportSummary}
// @Failure 400 {object} util.Response "unsupported or malformed file"
// @Router /admin/banks [post]
func (c *BankController) UploadBank(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing bank file")
		return
	}

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".json":
		file, err := fileHeader.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()

		summary, err := c.BankService.ImportJSON(file, nil)
		if err != nil {
			util.BadRequest(ctx, "malformed bank JSON: "+err.Error())
			return
		}
		util.Success(ctx, summary)

	case ".zip":
		tmp, err := os.CreateTemp("", "bank-*.zip")
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer os.Remove(tmp.Name())
		tmp.Close()

		if err := ctx.SaveUploadedFile(fileHeader, tmp.Name()); err != nil {
			util.LogInternalError(ctx, err)
			return
		}

		summary, err := c.BankService.ImportZip(ctx.Request.Context(), tmp.Name())
		if err != nil {
			util.BadRequest(ctx, "malformed bank archive: "+err.Error())
			return
		}
		util.Success(ctx, summary)

	default:
		util.BadRequest(ctx, util.ErrUnsupportedArchive.Error())
	}
}

// GetBanks godoc
// @Summary List imported banks
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.BankInfo}
// @Router /admin/banks [get]
func (c *BankController) GetBanks(ctx *gin.Context) {
	banks, err := c.ExamService.Banks()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, banks)
}

// SeedSamples godoc
// @Summary Seed sample questions
// @Description Loads the built-in demo bank when the catalog is empty
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ImportSummary}
// @Router /admin/banks/seed [post]
func (c *BankController) SeedSamples(ctx *gin.Context) {
	summary, err := c.BankService.SeedSamples()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
