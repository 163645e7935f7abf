package i18n

// Message keys. Every key has an entry in both catalogs.
const (
	NavHome      = "nav.home"
	NavSearch    = "nav.search"
	NavFavorites = "nav.favorites"
	NavProfile   = "nav.profile"
	NavAdmin     = "nav.admin"
	NavLogin     = "nav.login"
	NavLogout    = "nav.logout"
	NavSignup    = "nav.signup"

	LoginTitle     = "auth.login.title"
	LoginEmail     = "auth.login.email"
	LoginPassword  = "auth.login.password"
	LoginSubmit    = "auth.login.submit"
	LoginNoAccount = "auth.login.noAccount"
	LoginError     = "auth.login.error"

	SignupTitle           = "auth.signup.title"
	SignupConfirmPassword = "auth.signup.confirmPassword"
	SignupSubmit          = "auth.signup.submit"
	SignupHaveAccount     = "auth.signup.haveAccount"
	SignupSuccess         = "auth.signup.success"
	SignupError           = "auth.signup.error"
	SignupUserExists      = "auth.signup.userExists"

	OtpTitle     = "auth.otp.title"
	OtpHint      = "auth.otp.hint"
	OtpCode      = "auth.otp.code"
	OtpBackup    = "auth.otp.backupCode"
	OtpUseBackup = "auth.otp.useBackup"
	OtpUseOtp    = "auth.otp.useOtp"
	OtpSubmit    = "auth.otp.submit"
	OtpError     = "auth.otp.error"
	OtpCancel    = "auth.otp.cancel"

	ChangePasswordTitle   = "auth.changePassword.title"
	ChangePasswordCurrent = "auth.changePassword.current"
	ChangePasswordNew     = "auth.changePassword.new"
	ChangePasswordConfirm = "auth.changePassword.confirm"
	ChangePasswordSubmit  = "auth.changePassword.submit"
	ChangePasswordSuccess = "auth.changePassword.success"
	ChangePasswordError   = "auth.changePassword.error"

	BackupCodesTitle    = "auth.backupCodes.title"
	BackupCodesHint     = "auth.backupCodes.hint"
	BackupCodesGenerate = "auth.backupCodes.generate"
	BackupCodesCopied   = "auth.backupCodes.copied"
	BackupCodesCopyFail = "auth.backupCodes.copyFailed"
	BackupCodesStats    = "auth.backupCodes.stats"
	BackupCodesIssued   = "auth.backupCodes.issued"

	ThemeToggle = "theme.toggle"
	ThemeLight  = "theme.light"
	ThemeDark   = "theme.dark"

	LanguageSelect = "language.select"
	LanguageEN     = "language.en"
	LanguageFR     = "language.fr"

	ProfileTitle       = "profile.title"
	ProfilePersonal    = "profile.personalInformation"
	ProfileFirstName   = "profile.firstName"
	ProfileLastName    = "profile.lastName"
	ProfilePreferences = "profile.preferences"
	ProfileApply       = "profile.apply"
	ProfileApplied     = "profile.applied"
	ProfileSaved       = "profile.saved"

	ExoDistance         = "exoplanet.distance"
	ExoTemperature      = "exoplanet.temperature"
	ExoDiscoveryYear    = "exoplanet.discoveryYear"
	ExoMass             = "exoplanet.mass"
	ExoRadius           = "exoplanet.radius"
	ExoLightYears       = "exoplanet.lightYears"
	ExoEarthMasses      = "exoplanet.earthMasses"
	ExoEarthRadii       = "exoplanet.earthRadii"
	ExoKelvin           = "exoplanet.kelvin"
	ExoUnknown          = "exoplanet.unknown"
	ExoHabitability     = "exoplanet.habitability"
	ExoHabitable        = "exoplanet.habitable"
	ExoNotHabitable     = "exoplanet.notHabitable"
	ExoBelowBand        = "exoplanet.belowBand"
	ExoAboveBand        = "exoplanet.aboveBand"
	ExoWithinBand       = "exoplanet.withinBand"
	ExoTempDesc         = "exoplanet.tempDesc"
	ExoAtmosphereDesc   = "exoplanet.atmosphereDesc"
	ExoSurfaceDesc      = "exoplanet.surfaceDesc"
	ExoAtmosphere       = "exoplanet.atmosphere"
	ExoSurface          = "exoplanet.surface"
	ExoSizeComparison   = "exoplanet.sizeComparison"
	ExoMassComparison   = "exoplanet.massComparison"
	ExoDescriptionTitle = "exoplanet.descriptionTitle"
	ExoTabOverview      = "exoplanet.tab.overview"
	ExoTabHabitability  = "exoplanet.tab.habitability"
	ExoTabOrbit         = "exoplanet.tab.orbit"
	ExoOrbitDays        = "exoplanet.orbitalPeriodDays"
	ExoOrbitYears       = "exoplanet.orbitalPeriodYears"
	ExoSemiMajorAxis    = "exoplanet.semiMajorAxis"
	ExoEccentricity     = "exoplanet.eccentricity"
	ExoTravelTime       = "exoplanet.travelTime"
	ExoDays             = "exoplanet.days"
	ExoYears            = "exoplanet.years"
	ExoAU               = "exoplanet.au"
	ExoAddFavorite      = "exoplanet.addToFavorites"
	ExoRemoveFavorite   = "exoplanet.removeFromFavorites"
	ExoLoginToFavorite  = "exoplanet.loginToFavorite"
	ExoAddedFavorite    = "exoplanet.addedToFavorites"
	ExoRemovedFavorite  = "exoplanet.removedFromFavorites"

	DescBody       = "description.body"
	DescOrbit      = "description.orbit"
	DescOrbitYears = "description.orbitYears"
	DescLightYears = "description.lightYears"
	DescDays       = "description.days"
	DescUnknown    = "description.unknown"

	SearchTitle       = "search.title"
	SearchName        = "search.name"
	SearchMinTemp     = "search.minTemp"
	SearchMaxTemp     = "search.maxTemp"
	SearchMinDistance = "search.minDistance"
	SearchMaxDistance = "search.maxDistance"
	SearchMinYear     = "search.minYear"
	SearchMaxYear     = "search.maxYear"
	SearchNoResults   = "search.noResults"
	SearchError       = "search.error"
	SearchPageOf      = "search.pageOf"
	SearchResults     = "search.results"
	SearchPageSize    = "search.pageSize"

	CommonLoading           = "common.loading"
	CommonError             = "common.error"
	CommonLoginRequired     = "common.loginRequired"
	CommonServerUnavailable = "common.serverUnavailable"
	CommonSessionExpired    = "common.sessionExpired"
	CommonForbidden         = "common.forbidden"
	CommonNotFound          = "common.notFound"
	CommonSave              = "common.save"
	CommonCancel            = "common.cancel"
	CommonConfirm           = "common.confirm"
	CommonClose             = "common.close"
	CommonBack              = "common.back"
	CommonQuit              = "common.quit"

	ModalSuccess = "modal.success"
	ModalError   = "modal.error"
	ModalDismiss = "modal.dismiss"

	HomeTitle          = "home.title"
	HomeSubtitle       = "home.subtitle"
	HomeLatest         = "home.latestTitle"
	HomeStartExploring = "home.startExploring"

	NotFoundTitle       = "notFound.title"
	NotFoundDescription = "notFound.description"
	NotFoundRedirect    = "notFound.redirect"

	FavoritesTitle = "favorites.title"
	FavoritesEmpty = "favorites.empty"

	AdminTitle           = "admin.title"
	AdminRefresh         = "admin.refresh"
	AdminInsert500       = "admin.insert500"
	AdminInsertHabitable = "admin.insertHabitable"
	AdminClearExoplanets = "admin.clearExoplanets"
	AdminResetDB         = "admin.resetDb"
	AdminResetAll        = "admin.resetAll"
	AdminConfirmTitle    = "admin.confirmTitle"
	AdminConfirmWarning  = "admin.confirmWarning"
	AdminRunning         = "admin.running"
	AdminDone            = "admin.done"
	AdminFailed          = "admin.failed"

	BuildTitle   = "build.title"
	BuildApp     = "build.app"
	BuildVersion = "build.version"
	BuildDate    = "build.date"
	BuildCommit  = "build.commit"

	HelpNavbar   = "help.navbar"
	HelpForm     = "help.form"
	HelpList     = "help.list"
	HelpSearch   = "help.search"
	HelpResults  = "help.results"
	HelpDetail   = "help.detail"
	HelpProfile  = "help.profile"
	HelpAdmin    = "help.admin"
	HelpConfirm  = "help.confirm"
	HelpOtp      = "help.otp"
	HelpBack     = "help.back"
	HelpHome     = "help.home"
	HelpNotFound = "help.notFound"
)
