package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vbls/standconsole/docs"
	v1 "github.com/vbls/standconsole/internal/api/handler/v1"
	"github.com/vbls/standconsole/internal/api/middleware"
	"github.com/vbls/standconsole/internal/config"
	"github.com/vbls/standconsole/internal/pkg/jwthelper"
	"github.com/vbls/standconsole/internal/repository"
	"github.com/vbls/standconsole/internal/repository/dao"
	"github.com/vbls/standconsole/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	standRepo := repository.NewStandRepository(dao.NewStandDAO(db))
	presetRepo := repository.NewPresetRepository(dao.NewPresetDAO(db))

	return NewServerWithServices(conf,
		service.NewStandService(standRepo),
		service.NewPresetService(standRepo, presetRepo))
}

// NewServerWithServices mounts the routes on top of already built services.
func NewServerWithServices(conf *config.AppConfig, stands v1.StandService, presets v1.PresetService) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(v1.NewStandHandler(stands), v1.NewPresetHandler(presets))

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(standHandler *v1.StandHandler, presetHandler *v1.PresetHandler) {
	const basePath = "/api/v1"

	auth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	admin := s.Router.Group(basePath, auth.VerifyJWT(), auth.RequireRole(jwthelper.RoleAdmin))
	{
		admin.GET("/stands", standHandler.HandleListStands)
		admin.POST("/stands", standHandler.HandleCreateStand)
		admin.PATCH("/stands/:standID/afternoon", standHandler.HandleUpdateAfternoon)
		admin.PATCH("/stands/:standID/double-staffed", standHandler.HandleUpdateDoubleStaffed)

		admin.GET("/presets", presetHandler.HandleListPresets)
		admin.GET("/presets/:presetType", presetHandler.HandleGetPreset)
		admin.PUT("/presets/:presetType", presetHandler.HandleUpdatePreset)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stand console API"
	docs.SwaggerInfo.Description = "Admin API for lifeguard stands and afternoon presets."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
