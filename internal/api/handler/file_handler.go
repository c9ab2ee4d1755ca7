package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/PLUB2022/plub-server/pkg/errcode"
	"github.com/PLUB2022/plub-server/pkg/response"
)

// UploadFile 上传图片，type 取 profile / plubbing / feed / todo
// @Summary 上传文件
// @Tags 文件
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param type formData string true "文件用途"
// @Param file formData file true "文件"
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 400 {object} response.Response
// @Router /api/files [post]
func (h *Handler) UploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, errcode.InvalidInputValue, "file is required", nil)
		return
	}
	url, err := h.uploader.Save(c.PostForm("type"), fh)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"fileUrl": url})
}
