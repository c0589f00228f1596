package controllers

import (
	"os"
	"path/filepath"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishImageController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewDishImageController(db *gorm.DB, uploadDir string) *DishImageController {
	return &DishImageController{DB: db, UploadDir: uploadDir}
}

func (d *DishImageController) imageResponse(c *gin.Context, img *entity.DishImage) gin.H {
	return gin.H{
		"id":   img.ID,
		"file": absoluteUploadURL(c, img.File),
		"name": img.Name,
	}
}

// GET /dish-image
func (d *DishImageController) List(c *gin.Context) {
	var images []entity.DishImage
	if err := d.DB.Order("id DESC").Find(&images).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(images))
	for i := range images {
		out = append(out, d.imageResponse(c, &images[i]))
	}
	resp.OK(c, out)
}

// POST /dish-image — multipart upload; display name defaults to the
// filename without its extension (entity hook).
func (d *DishImageController) Create(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	stored := filepath.ToSlash(filepath.Join("images", filepath.Base(file.Filename)))

	// reject duplicates before touching disk so an existing upload is
	// never overwritten
	var count int64
	if err := d.DB.Model(&entity.DishImage{}).Where("file = ?", stored).Count(&count).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.BadRequest(c, "dish image with this file already exists.")
		return
	}

	dst := filepath.Join(d.UploadDir, "images", filepath.Base(file.Filename))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		resp.ServerError(c, err)
		return
	}

	img := entity.DishImage{File: stored, Name: c.PostForm("name")}
	if err := d.DB.Create(&img).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, d.imageResponse(c, &img))
}

// GET /dish-image/:id
func (d *DishImageController) Retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var img entity.DishImage
	if !firstOrNotFound(c, d.DB.First(&img, id).Error, "dish image") {
		return
	}
	resp.OK(c, d.imageResponse(c, &img))
}

// PUT /dish-image/:id — only the display name is mutable
func (d *DishImageController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var img entity.DishImage
	if !firstOrNotFound(c, d.DB.First(&img, id).Error, "dish image") {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img.Name = req.Name
	if err := d.DB.Save(&img).Error; err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, d.imageResponse(c, &img))
}

// DELETE /dish-image/:id — cascades to dishes using the image; the file on
// disk is left in place
func (d *DishImageController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var img entity.DishImage
	if !firstOrNotFound(c, d.DB.First(&img, id).Error, "dish image") {
		return
	}
	if err := d.DB.Unscoped().Delete(&img).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(204)
}
