package i18n

var catalogEN = map[string]string{
	NavHome:      "Home",
	NavSearch:    "Search",
	NavFavorites: "Favorites",
	NavProfile:   "Profile",
	NavAdmin:     "Admin",
	NavLogin:     "Login",
	NavLogout:    "Logout",
	NavSignup:    "Sign up",

	LoginTitle:     "Welcome Back",
	LoginEmail:     "Email Address",
	LoginPassword:  "Password",
	LoginSubmit:    "Sign In",
	LoginNoAccount: "Don't have an account? Press ctrl+n to sign up",
	LoginError:     "Invalid email or password",

	SignupTitle:           "Create Account",
	SignupConfirmPassword: "Confirm Password",
	SignupSubmit:          "Create Account",
	SignupHaveAccount:     "Already have an account? Press ctrl+l to sign in",
	SignupSuccess:         "Signup successful",
	SignupError:           "Signup failed",
	SignupUserExists:      "An account already exists with this email",

	OtpTitle:     "Verify OTP",
	OtpHint:      "A verification code was sent to {0}",
	OtpCode:      "One-time code",
	OtpBackup:    "Backup code",
	OtpUseBackup: "Use a backup code instead",
	OtpUseOtp:    "Use the emailed code instead",
	OtpSubmit:    "Verify",
	OtpError:     "Invalid code",
	OtpCancel:    "Back to login",

	ChangePasswordTitle:   "Change Password",
	ChangePasswordCurrent: "Current Password",
	ChangePasswordNew:     "New Password",
	ChangePasswordConfirm: "Confirm New Password",
	ChangePasswordSubmit:  "Update Password",
	ChangePasswordSuccess: "Password changed successfully",
	ChangePasswordError:   "Password change failed",

	BackupCodesTitle:    "Backup Codes",
	BackupCodesHint:     "Store these codes somewhere safe. Each one works once and they will not be shown again.",
	BackupCodesGenerate: "Generate backup codes",
	BackupCodesCopied:   "Backup codes copied to clipboard",
	BackupCodesCopyFail: "Could not copy to clipboard",
	BackupCodesStats:    "{0} available, {1} used, {2} total",
	BackupCodesIssued:   "New backup codes: {0}",

	ThemeToggle: "Toggle theme",
	ThemeLight:  "Light",
	ThemeDark:   "Dark",

	LanguageSelect: "Select language",
	LanguageEN:     "English",
	LanguageFR:     "French",

	ProfileTitle:       "Profile",
	ProfilePersonal:    "Personal Information",
	ProfileFirstName:   "First Name",
	ProfileLastName:    "Last Name",
	ProfilePreferences: "Preferences",
	ProfileApply:       "Apply preferences",
	ProfileApplied:     "Preferences applied",
	ProfileSaved:       "Changes saved",

	ExoDistance:         "Distance",
	ExoTemperature:      "Temperature",
	ExoDiscoveryYear:    "Discovery Year",
	ExoMass:             "Mass",
	ExoRadius:           "Radius",
	ExoLightYears:       "light years",
	ExoEarthMasses:      "Earth masses",
	ExoEarthRadii:       "Earth radii",
	ExoKelvin:           "K",
	ExoUnknown:          "unknown",
	ExoHabitability:     "Habitability Potential",
	ExoHabitable:        "Potentially habitable",
	ExoNotHabitable:     "This exoplanet is not considered potentially habitable by our current criteria.",
	ExoBelowBand:        "Its temperature of {0} K is below the habitable range (180 K - 310 K) for liquid water.",
	ExoAboveBand:        "Its temperature of {0} K is above the habitable range (180 K - 310 K) for liquid water.",
	ExoWithinBand:       "Its temperature of {0} K is within the habitable range (180 K - 310 K).",
	ExoTempDesc:         "Within habitable range for liquid water",
	ExoAtmosphereDesc:   "Potentially similar to Earth's",
	ExoSurfaceDesc:      "Possibly rocky with surface water",
	ExoAtmosphere:       "Atmosphere",
	ExoSurface:          "Surface",
	ExoSizeComparison:   "Size compared to Earth",
	ExoMassComparison:   "Mass compared to Earth",
	ExoDescriptionTitle: "Exoplanet Description",
	ExoTabOverview:      "Overview",
	ExoTabHabitability:  "Habitability",
	ExoTabOrbit:         "Orbit",
	ExoOrbitDays:        "Orbital period (days)",
	ExoOrbitYears:       "Orbital period (years)",
	ExoSemiMajorAxis:    "Semi-major axis",
	ExoEccentricity:     "Eccentricity",
	ExoTravelTime:       "Travel time at light-sail speed",
	ExoDays:             "days",
	ExoYears:            "years",
	ExoAU:               "AU",
	ExoAddFavorite:      "Add to Favorites",
	ExoRemoveFavorite:   "Remove from Favorites",
	ExoLoginToFavorite:  "Login to add to favorites",
	ExoAddedFavorite:    "Exoplanet added to favorites",
	ExoRemovedFavorite:  "Exoplanet removed from favorites",

	DescBody:       "Exoplanet {0} is located approximately {1}. It has a radius of {2}, an estimated mass of {3}, and an average temperature of {4}.",
	DescOrbit:      " Its orbit lasts about {0}{1}.",
	DescOrbitYears: " (or {0} years)",
	DescLightYears: "light-years",
	DescDays:       "days",
	DescUnknown:    "unknown",

	SearchTitle:       "Search Exoplanets",
	SearchName:        "Name",
	SearchMinTemp:     "Min temperature (K)",
	SearchMaxTemp:     "Max temperature (K)",
	SearchMinDistance: "Min distance (ly)",
	SearchMaxDistance: "Max distance (ly)",
	SearchMinYear:     "Discovered from",
	SearchMaxYear:     "Discovered until",
	SearchNoResults:   "No exoplanets found",
	SearchError:       "Error loading exoplanets",
	SearchPageOf:      "Page {0} of {1}",
	SearchResults:     "{0} results",
	SearchPageSize:    "{0} per page",

	CommonLoading:           "Loading...",
	CommonError:             "An error occurred",
	CommonLoginRequired:     "You must be logged in to perform this action",
	CommonServerUnavailable: "The server is unavailable. Please try again later.",
	CommonSessionExpired:    "Your session has expired. Please log in again.",
	CommonForbidden:         "You are not allowed to perform this action",
	CommonNotFound:          "The requested resource was not found",
	CommonSave:              "Save",
	CommonCancel:            "Cancel",
	CommonConfirm:           "Confirm",
	CommonClose:             "Close",
	CommonBack:              "Back",
	CommonQuit:              "Quit",

	ModalSuccess: "Success",
	ModalError:   "Error",
	ModalDismiss: "Press enter or esc to close",

	HomeTitle:          "Explore the Universe Beyond",
	HomeSubtitle:       "Discover fascinating exoplanets and learn about distant worlds.",
	HomeLatest:         "Latest Discoveries",
	HomeStartExploring: "Start Exploring",

	NotFoundTitle:       "Oops, we have a problem!",
	NotFoundDescription: "The page you are looking for has drifted into deep space.",
	NotFoundRedirect:    "Redirecting to home in {0} seconds",

	FavoritesTitle: "Favorite Exoplanets",
	FavoritesEmpty: "You have no favorites yet",

	AdminTitle:           "Administration",
	AdminRefresh:         "Refresh catalog from archive",
	AdminInsert500:       "Insert 500 test exoplanets",
	AdminInsertHabitable: "Insert habitable exoplanets",
	AdminClearExoplanets: "Clear all exoplanets",
	AdminResetDB:         "Reset database",
	AdminResetAll:        "Reset everything",
	AdminConfirmTitle:    "Are you sure?",
	AdminConfirmWarning:  "\"{0}\" cannot be undone.",
	AdminRunning:         "running...",
	AdminDone:            "{0} completed",
	AdminFailed:          "{0} failed",

	BuildVersion: "Version",
	BuildDate:    "Build date",
	BuildCommit:  "Commit",

	BuildTitle: "About",
	BuildApp:   "Application",

	HelpNavbar:   "alt+1 home │ alt+2 search │ alt+3 favorites │ alt+4 profile │ alt+5 admin │ alt+6 login/logout │ alt+t theme │ alt+g language │ f1 about",
	HelpForm:     "tab/shift+tab: field │ enter: submit",
	HelpList:     "↑/↓: select │ enter: open",
	HelpSearch:   "tab/shift+tab: field │ enter: search │ ctrl+r: clear",
	HelpResults:  "↑/↓: select │ enter: open │ ←/→: page │ s: page size │ tab: filters",
	HelpDetail:   "←/→: tab │ f: favorite │ esc: back",
	HelpProfile:  "tab/shift+tab: field │ enter: submit section │ ctrl+a: apply preferences │ ctrl+g: backup codes │ ctrl+y: copy codes",
	HelpAdmin:    "↑/↓: select │ enter: run",
	HelpConfirm:  "y: yes │ n: no",
	HelpOtp:      "enter: verify │ ctrl+b: switch code type │ esc: back to login",
	HelpBack:     "esc: back",
	HelpHome:     "↑/↓: select │ enter: open │ s: start exploring",
	HelpNotFound: "enter: go home now",
}
