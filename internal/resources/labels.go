package resources

// label is the French and English translation of a label resource key.
type label struct {
	key string
	fr  string
	en  string
}

var labels = []label{
	{key: "securite.profil.droit.code", fr: "Code", en: "Code"},
	{key: "securite.profil.droit.libelle", fr: "Libellé", en: "Label"},
	{key: "securite.profil.droit.typeDroit", fr: "Type de droit", en: "Right type"},
	{key: "securite.profil.droit.values.Create", fr: "Création", en: "Create"},
	{key: "securite.profil.droit.values.Delete", fr: "Suppression", en: "Delete"},
	{key: "securite.profil.droit.values.Read", fr: "Lecture", en: "Read"},
	{key: "securite.profil.droit.values.Update", fr: "Modification", en: "Update"},

	{key: "securite.profil.profil.dateCreation", fr: "Date de création", en: "Creation date"},
	{key: "securite.profil.profil.dateModification", fr: "Date de modification", en: "Modification date"},
	{key: "securite.profil.profil.droits", fr: "Droits", en: "Rights"},
	{key: "securite.profil.profil.id", fr: "Id technique", en: "Id"},
	{key: "securite.profil.profil.libelle", fr: "Libellé", en: "Label"},

	{key: "securite.profil.typeDroit.code", fr: "Code", en: "Code"},
	{key: "securite.profil.typeDroit.libelle", fr: "Libellé", en: "Label"},
	{key: "securite.profil.typeDroit.values.Admin", fr: "Administration", en: "Administration"},
	{key: "securite.profil.typeDroit.values.Read", fr: "Lecture", en: "Read"},
	{key: "securite.profil.typeDroit.values.Write", fr: "Écriture", en: "Write"},

	{key: "securite.utilisateur.typeUtilisateur.code", fr: "Code", en: "Code"},
	{key: "securite.utilisateur.typeUtilisateur.libelle", fr: "Libellé", en: "Label"},
	{key: "securite.utilisateur.typeUtilisateur.values.Admin", fr: "Administrateur", en: "Administrator"},
	{key: "securite.utilisateur.typeUtilisateur.values.Client", fr: "Client", en: "Customer"},
	{key: "securite.utilisateur.typeUtilisateur.values.Gestionnaire", fr: "Gestionnaire", en: "Manager"},

	{key: "securite.utilisateur.utilisateur.actif", fr: "Actif", en: "Active"},
	{key: "securite.utilisateur.utilisateur.adresse", fr: "Adresse", en: "Address"},
	{key: "securite.utilisateur.utilisateur.dateCreation", fr: "Date de création", en: "Creation date"},
	{key: "securite.utilisateur.utilisateur.dateModification", fr: "Date de modification", en: "Modification date"},
	{key: "securite.utilisateur.utilisateur.dateNaissance", fr: "Date de naissance", en: "Date of birth"},
	{key: "securite.utilisateur.utilisateur.email", fr: "Adresse email", en: "Email address"},
	{key: "securite.utilisateur.utilisateur.id", fr: "Id technique", en: "Id"},
	{key: "securite.utilisateur.utilisateur.nom", fr: "Nom", en: "Last name"},
	{key: "securite.utilisateur.utilisateur.prenom", fr: "Prénom", en: "First name"},
	{key: "securite.utilisateur.utilisateur.profilId", fr: "Profil", en: "Profile"},
	{key: "securite.utilisateur.utilisateur.typeUtilisateurCode", fr: "Type d'utilisateur", en: "User type"},
}
