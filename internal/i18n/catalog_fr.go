package i18n

var catalogFR = map[string]string{
	NavHome:      "Accueil",
	NavSearch:    "Rechercher",
	NavFavorites: "Favoris",
	NavProfile:   "Profil",
	NavAdmin:     "Admin",
	NavLogin:     "Connexion",
	NavLogout:    "Déconnexion",
	NavSignup:    "Inscription",

	LoginTitle:     "Bon retour",
	LoginEmail:     "Adresse e-mail",
	LoginPassword:  "Mot de passe",
	LoginSubmit:    "Se connecter",
	LoginNoAccount: "Pas de compte ? Appuyez sur ctrl+n pour vous inscrire",
	LoginError:     "E-mail ou mot de passe invalide",

	SignupTitle:           "Créer un compte",
	SignupConfirmPassword: "Confirmer le mot de passe",
	SignupSubmit:          "Créer le compte",
	SignupHaveAccount:     "Déjà un compte ? Appuyez sur ctrl+l pour vous connecter",
	SignupSuccess:         "Inscription réussie",
	SignupError:           "Échec de l'inscription",
	SignupUserExists:      "Un compte existe déjà avec cet e-mail",

	OtpTitle:     "Vérification OTP",
	OtpHint:      "Un code de vérification a été envoyé à {0}",
	OtpCode:      "Code à usage unique",
	OtpBackup:    "Code de secours",
	OtpUseBackup: "Utiliser un code de secours",
	OtpUseOtp:    "Utiliser le code reçu par e-mail",
	OtpSubmit:    "Vérifier",
	OtpError:     "Code invalide",
	OtpCancel:    "Retour à la connexion",

	ChangePasswordTitle:   "Changer le mot de passe",
	ChangePasswordCurrent: "Mot de passe actuel",
	ChangePasswordNew:     "Nouveau mot de passe",
	ChangePasswordConfirm: "Confirmer le nouveau mot de passe",
	ChangePasswordSubmit:  "Mettre à jour",
	ChangePasswordSuccess: "Mot de passe modifié avec succès",
	ChangePasswordError:   "Échec du changement de mot de passe",

	BackupCodesTitle:    "Codes de secours",
	BackupCodesHint:     "Conservez ces codes en lieu sûr. Chacun ne fonctionne qu'une fois et ils ne seront plus affichés.",
	BackupCodesGenerate: "Générer des codes de secours",
	BackupCodesCopied:   "Codes de secours copiés dans le presse-papiers",
	BackupCodesCopyFail: "Impossible de copier dans le presse-papiers",
	BackupCodesStats:    "{0} disponibles, {1} utilisés, {2} au total",
	BackupCodesIssued:   "Nouveaux codes de secours : {0}",

	ThemeToggle: "Changer de thème",
	ThemeLight:  "Clair",
	ThemeDark:   "Sombre",

	LanguageSelect: "Choisir la langue",
	LanguageEN:     "Anglais",
	LanguageFR:     "Français",

	ProfileTitle:       "Profil",
	ProfilePersonal:    "Informations personnelles",
	ProfileFirstName:   "Prénom",
	ProfileLastName:    "Nom",
	ProfilePreferences: "Préférences",
	ProfileApply:       "Appliquer les préférences",
	ProfileApplied:     "Préférences appliquées",
	ProfileSaved:       "Modifications enregistrées",

	ExoDistance:         "Distance",
	ExoTemperature:      "Température",
	ExoDiscoveryYear:    "Année de découverte",
	ExoMass:             "Masse",
	ExoRadius:           "Rayon",
	ExoLightYears:       "années-lumière",
	ExoEarthMasses:      "masses terrestres",
	ExoEarthRadii:       "rayons terrestres",
	ExoKelvin:           "K",
	ExoUnknown:          "inconnue",
	ExoHabitability:     "Potentiel d'habitabilité",
	ExoHabitable:        "Potentiellement habitable",
	ExoNotHabitable:     "Cette exoplanète n'est pas considérée comme potentiellement habitable selon nos critères actuels.",
	ExoBelowBand:        "Sa température de {0} K se situe en dessous de la plage habitable (180 K - 310 K) pour l'eau liquide.",
	ExoAboveBand:        "Sa température de {0} K se situe au-dessus de la plage habitable (180 K - 310 K) pour l'eau liquide.",
	ExoWithinBand:       "Sa température de {0} K se situe dans la plage habitable (180 K - 310 K).",
	ExoTempDesc:         "Dans la plage habitable pour l'eau liquide",
	ExoAtmosphereDesc:   "Potentiellement similaire à celle de la Terre",
	ExoSurfaceDesc:      "Possiblement rocheuse avec de l'eau en surface",
	ExoAtmosphere:       "Atmosphère",
	ExoSurface:          "Surface",
	ExoSizeComparison:   "Taille par rapport à la Terre",
	ExoMassComparison:   "Masse par rapport à la Terre",
	ExoDescriptionTitle: "Description de l'exoplanète",
	ExoTabOverview:      "Aperçu",
	ExoTabHabitability:  "Habitabilité",
	ExoTabOrbit:         "Orbite",
	ExoOrbitDays:        "Période orbitale (jours)",
	ExoOrbitYears:       "Période orbitale (années)",
	ExoSemiMajorAxis:    "Demi-grand axe",
	ExoEccentricity:     "Excentricité",
	ExoTravelTime:       "Temps de trajet à la vitesse d'une voile solaire",
	ExoDays:             "jours",
	ExoYears:            "ans",
	ExoAU:               "UA",
	ExoAddFavorite:      "Ajouter aux favoris",
	ExoRemoveFavorite:   "Retirer des favoris",
	ExoLoginToFavorite:  "Connectez-vous pour ajouter aux favoris",
	ExoAddedFavorite:    "Exoplanète ajoutée aux favoris",
	ExoRemovedFavorite:  "Exoplanète retirée des favoris",

	DescBody:       "L'exoplanète {0} est située à environ {1}. Elle possède un rayon de {2}, une masse estimée à {3}, et une température moyenne de {4}.",
	DescOrbit:      " Son orbite dure environ {0}{1}.",
	DescOrbitYears: " (soit {0} ans)",
	DescLightYears: "années-lumière",
	DescDays:       "jours",
	DescUnknown:    "inconnue",

	SearchTitle:       "Rechercher des exoplanètes",
	SearchName:        "Nom",
	SearchMinTemp:     "Température min (K)",
	SearchMaxTemp:     "Température max (K)",
	SearchMinDistance: "Distance min (al)",
	SearchMaxDistance: "Distance max (al)",
	SearchMinYear:     "Découverte depuis",
	SearchMaxYear:     "Découverte jusqu'à",
	SearchNoResults:   "Aucune exoplanète trouvée",
	SearchError:       "Erreur lors du chargement des exoplanètes",
	SearchPageOf:      "Page {0} sur {1}",
	SearchResults:     "{0} résultats",
	SearchPageSize:    "{0} par page",

	CommonLoading:           "Chargement...",
	CommonError:             "Une erreur est survenue",
	CommonLoginRequired:     "Vous devez être connecté pour effectuer cette action",
	CommonServerUnavailable: "Le serveur est indisponible. Veuillez réessayer plus tard.",
	CommonSessionExpired:    "Votre session a expiré. Veuillez vous reconnecter.",
	CommonForbidden:         "Vous n'êtes pas autorisé à effectuer cette action",
	CommonNotFound:          "La ressource demandée est introuvable",
	CommonSave:              "Enregistrer",
	CommonCancel:            "Annuler",
	CommonConfirm:           "Confirmer",
	CommonClose:             "Fermer",
	CommonBack:              "Retour",
	CommonQuit:              "Quitter",

	ModalSuccess: "Succès",
	ModalError:   "Erreur",
	ModalDismiss: "Appuyez sur entrée ou échap pour fermer",

	HomeTitle:          "Explorez l'univers au-delà",
	HomeSubtitle:       "Découvrez des exoplanètes fascinantes et des mondes lointains.",
	HomeLatest:         "Dernières découvertes",
	HomeStartExploring: "Commencer l'exploration",

	NotFoundTitle:       "Oups, nous avons un problème !",
	NotFoundDescription: "La page que vous cherchez a dérivé dans l'espace profond.",
	NotFoundRedirect:    "Redirection vers l'accueil dans {0} secondes",

	FavoritesTitle: "Exoplanètes favorites",
	FavoritesEmpty: "Vous n'avez pas encore de favoris",

	AdminTitle:           "Administration",
	AdminRefresh:         "Rafraîchir le catalogue depuis l'archive",
	AdminInsert500:       "Insérer 500 exoplanètes de test",
	AdminInsertHabitable: "Insérer des exoplanètes habitables",
	AdminClearExoplanets: "Supprimer toutes les exoplanètes",
	AdminResetDB:         "Réinitialiser la base",
	AdminResetAll:        "Tout réinitialiser",
	AdminConfirmTitle:    "Êtes-vous sûr ?",
	AdminConfirmWarning:  "« {0} » est irréversible.",
	AdminRunning:         "en cours...",
	AdminDone:            "{0} terminé",
	AdminFailed:          "{0} a échoué",

	BuildVersion: "Version",
	BuildDate:    "Date de build",
	BuildCommit:  "Commit",

	BuildTitle: "À propos",
	BuildApp:   "Application",

	HelpNavbar:   "alt+1 accueil │ alt+2 recherche │ alt+3 favoris │ alt+4 profil │ alt+5 admin │ alt+6 connexion/déconnexion │ alt+t thème │ alt+g langue │ f1 à propos",
	HelpForm:     "tab/shift+tab : champ │ entrée : valider",
	HelpList:     "↑/↓ : choisir │ entrée : ouvrir",
	HelpSearch:   "tab/shift+tab : champ │ entrée : rechercher │ ctrl+r : effacer",
	HelpResults:  "↑/↓ : choisir │ entrée : ouvrir │ ←/→ : page │ s : taille de page │ tab : filtres",
	HelpDetail:   "←/→ : onglet │ f : favori │ échap : retour",
	HelpProfile:  "tab/shift+tab : champ │ entrée : valider la section │ ctrl+a : appliquer les préférences │ ctrl+g : codes de secours │ ctrl+y : copier les codes",
	HelpAdmin:    "↑/↓ : choisir │ entrée : lancer",
	HelpConfirm:  "y : oui │ n : non",
	HelpOtp:      "entrée : vérifier │ ctrl+b : changer de type de code │ échap : retour à la connexion",
	HelpBack:     "échap : retour",
	HelpHome:     "↑/↓ : choisir │ entrée : ouvrir │ s : commencer l'exploration",
	HelpNotFound: "entrée : retour à l'accueil",
}
