package registry

import (
	"fmt"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// Builtin returns a registry pre-populated with the descriptors for the
// standard JSS object types. Conventional defaults (id_url "/id/", search by
// name) are filled by Normalize at registration, so entries only spell out
// what deviates from convention.
func Builtin() (*Registry, error) {
	r := New()
	if err := RegisterBuiltin(r); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterBuiltin registers the standard descriptor catalog into r.
func RegisterBuiltin(r *Registry) error {
	for _, d := range builtinDescriptors() {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("builtin catalog: %w", err)
		}
	}
	return nil
}

func builtinDescriptors() []*descriptor.Descriptor {
	full := func(kind, path string) *descriptor.Descriptor {
		return &descriptor.Descriptor{
			Kind: kind, Path: path,
			CanList: true, CanGet: true, CanPut: true, CanPost: true, CanDelete: true,
		}
	}
	// Singleton endpoints hold server-wide settings: one record, no listing,
	// no creation, no deletion.
	singleton := func(kind, path string) *descriptor.Descriptor {
		return &descriptor.Descriptor{
			Kind: kind, Path: path,
			CanGet: true, CanPut: true,
		}
	}

	deviceSearchTypes := func(extra map[string]string) map[string]string {
		types := map[string]string{
			"name":          "/name/",
			"serial_number": "/serialnumber/",
			"udid":          "/udid/",
			"macaddress":    "/macaddress/",
			"match":         "/match/",
		}
		for key, fragment := range extra {
			types[key] = fragment
		}
		return types
	}

	account := full("account", "/accounts")
	account.Container = "users"
	account.IDURL = "/userid/"
	account.DefaultSearch = "username"
	account.SearchTypes = map[string]string{
		"username": "/username/",
		"userid":   "/userid/",
	}

	accountGroup := full("group", "/accounts")
	accountGroup.Container = "groups"
	accountGroup.IDURL = "/groupid/"
	accountGroup.DefaultSearch = "groupname"
	accountGroup.SearchTypes = map[string]string{
		"groupname": "/groupname/",
		"groupid":   "/groupid/",
	}

	category := full("category", "/categories")
	category.DataKeys = descriptor.DataKeys{
		"priority": 9,
	}

	computer := full("computer", "/computers")
	computer.Container = "computers"
	computer.CanSubset = true
	computer.SearchTypes = deviceSearchTypes(nil)

	computerCommand := &descriptor.Descriptor{
		Kind: "computer_command", Path: "/computercommands",
		CanList: true, CanGet: true, CanPost: true,
		DefaultSearch: "command",
		SearchTypes: map[string]string{
			"command": "/command/",
			"uuid":    "/uuid/",
		},
	}

	computerGroup := full("computer_group", "/computergroups")
	computerGroup.DataKeys = descriptor.DataKeys{
		"is_smart":  false,
		"criteria":  "",
		"computers": "",
	}

	computerInvitation := &descriptor.Descriptor{
		Kind: "computer_invitation", Path: "/computerinvitations",
		CanList: true, CanPost: true, CanDelete: true,
		DefaultSearch: "invitation",
		SearchTypes: map[string]string{
			"invitation": "/invitation/",
			"name":       "/name/",
		},
		DataKeys: descriptor.DataKeys{
			"invitation_type": "USER_INITIATED_URL",
		},
	}

	computerReport := &descriptor.Descriptor{
		Kind: "computer_report", Path: "/computerreports",
		CanList: true, CanGet: true,
		ListType: "computer_report",
	}

	ebook := full("ebook", "/ebooks")
	ebook.CanSubset = true

	ibeacon := full("ibeacon", "/ibeacons")
	ibeacon.MinVersion = ">= 9.3"

	jssUser := &descriptor.Descriptor{
		Kind: "jss_user", Path: "/jssuser",
		CanGet: true,
	}

	macApplication := full("mac_application", "/macapplications")
	macApplication.CanSubset = true

	managedPreferenceProfile := &descriptor.Descriptor{
		Kind: "managed_preference_profile", Path: "/managedpreferenceprofiles",
		// Creating preference profiles through the API is not supported.
		CanList: true, CanGet: true, CanPut: true, CanDelete: true,
		CanSubset: true,
	}

	mobileDevice := full("mobile_device", "/mobiledevices")
	mobileDevice.Container = "mobile_devices"
	mobileDevice.CanSubset = true
	mobileDevice.SearchTypes = deviceSearchTypes(nil)

	mobileDeviceApplication := full("mobile_device_application", "/mobiledeviceapplications")
	mobileDeviceApplication.CanSubset = true
	mobileDeviceApplication.SearchTypes = map[string]string{
		"name":     "/name/",
		"bundleid": "/bundleid/",
	}

	mobileDeviceCommand := &descriptor.Descriptor{
		Kind: "mobile_device_command", Path: "/mobiledevicecommands",
		CanList: true, CanGet: true, CanPost: true,
		DefaultSearch: "command",
		SearchTypes: map[string]string{
			"command": "/command/",
			"uuid":    "/uuid/",
		},
	}

	mobileDeviceConfigurationProfile := full("configuration_profile", "/mobiledeviceconfigurationprofiles")
	mobileDeviceConfigurationProfile.CanSubset = true

	mobileDeviceEnrollmentProfile := full("mobile_device_enrollment_profile", "/mobiledeviceenrollmentprofiles")
	mobileDeviceEnrollmentProfile.CanSubset = true
	mobileDeviceEnrollmentProfile.SearchTypes = map[string]string{
		"name":       "/name/",
		"invitation": "/invitation/",
	}

	mobileDeviceGroup := full("mobile_device_group", "/mobiledevicegroups")
	mobileDeviceGroup.DataKeys = descriptor.DataKeys{
		"is_smart":       false,
		"criteria":       "",
		"mobile_devices": "",
	}

	mobileDeviceInvitation := &descriptor.Descriptor{
		Kind: "mobile_device_invitation", Path: "/mobiledeviceinvitations",
		CanList: true, CanPost: true, CanDelete: true,
		DefaultSearch: "invitation",
		SearchTypes: map[string]string{
			"invitation": "/invitation/",
		},
		DataKeys: descriptor.DataKeys{
			"invitation_type": "DEFAULT",
		},
	}

	mobileDeviceProvisioningProfile := full("mobile_device_provisioning_profile", "/mobiledeviceprovisioningprofiles")
	mobileDeviceProvisioningProfile.CanSubset = true
	mobileDeviceProvisioningProfile.DefaultSearch = "uuid"
	mobileDeviceProvisioningProfile.SearchTypes = map[string]string{
		"uuid": "/uuid/",
		"name": "/name/",
	}

	osxConfigurationProfile := full("os_x_configuration_profile", "/osxconfigurationprofiles")
	osxConfigurationProfile.CanSubset = true

	pkg := full("package", "/packages")
	pkg.DataKeys = descriptor.DataKeys{
		"info":                          "",
		"notes":                         "",
		"priority":                      10,
		"reboot_required":               false,
		"fill_user_template":            false,
		"fill_existing_users":           false,
		"boot_volume_required":          true,
		"allow_uninstalled":             false,
		"os_requirements":               "",
		"install_if_reported_available": false,
		"send_notification":             false,
	}

	patch := &descriptor.Descriptor{
		Kind: "patch", Path: "/patches",
		CanList: true, CanGet: true, CanPut: true, CanDelete: true,
		MinVersion: ">= 9.93",
	}

	peripheral := full("peripheral", "/peripherals")
	peripheral.CanSubset = true
	peripheral.DefaultSearch = "id"
	peripheral.SearchTypes = map[string]string{"id": "/id/"}

	peripheralType := full("peripheral_type", "/peripheraltypes")
	peripheralType.DefaultSearch = "id"
	peripheralType.SearchTypes = map[string]string{"id": "/id/"}

	policy := full("policy", "/policies")
	policy.CanSubset = true
	policy.DataKeys = descriptor.DataKeys{
		"general": descriptor.DataKeys{
			"name":      "",
			"enabled":   true,
			"frequency": "Once per computer",
			"category":  "",
		},
		"scope": descriptor.DataKeys{
			"computers":       "",
			"computer_groups": "",
			"buildings":       "",
			"departments":     "",
			"exclusions": descriptor.DataKeys{
				"computers":       "",
				"computer_groups": "",
				"buildings":       "",
				"departments":     "",
			},
		},
		"self_service": descriptor.DataKeys{
			"use_for_self_service": true,
		},
		"package_configuration": descriptor.DataKeys{
			"packages": "",
		},
		"maintenance": descriptor.DataKeys{
			"recon": true,
		},
	}

	restrictedSoftware := full("restricted_software", "/restrictedsoftware")
	restrictedSoftware.Container = "restricted_software"
	restrictedSoftware.ListType = "restricted_software_title"

	savedSearch := &descriptor.Descriptor{
		Kind: "saved_search", Path: "/savedsearches",
		CanList: true, CanGet: true,
	}

	script := full("script", "/scripts")
	script.DataKeys = descriptor.DataKeys{
		"filename":        "",
		"info":            "",
		"notes":           "",
		"priority":        "After",
		"os_requirements": "",
		"script_contents": "",
	}

	vppAccount := full("vpp_account", "/vppaccounts")
	vppAccount.MinVersion = ">= 9.5"

	return []*descriptor.Descriptor{
		account,
		accountGroup,
		singleton("activation_code", "/activationcode"),
		full("advanced_computer_search", "/advancedcomputersearches"),
		full("advanced_mobile_device_search", "/advancedmobiledevicesearches"),
		full("advanced_user_search", "/advancedusersearches"),
		full("building", "/buildings"),
		category,
		full("class", "/classes"),
		computer,
		singleton("computer_check_in", "/computercheckin"),
		computerCommand,
		full("computer_configuration", "/computerconfigurations"),
		full("computer_extension_attribute", "/computerextensionattributes"),
		computerGroup,
		singleton("computer_inventory_collection", "/computerinventorycollection"),
		computerInvitation,
		computerReport,
		full("department", "/departments"),
		full("directory_binding", "/directorybindings"),
		full("disk_encryption_configuration", "/diskencryptionconfigurations"),
		full("distribution_point", "/distributionpoints"),
		full("dock_item", "/dockitems"),
		ebook,
		singleton("gsx_connection", "/gsxconnection"),
		ibeacon,
		jssUser,
		full("ldap_server", "/ldapservers"),
		full("licensed_software", "/licensedsoftware"),
		macApplication,
		managedPreferenceProfile,
		mobileDevice,
		mobileDeviceApplication,
		mobileDeviceCommand,
		mobileDeviceConfigurationProfile,
		mobileDeviceEnrollmentProfile,
		full("mobile_device_extension_attribute", "/mobiledeviceextensionattributes"),
		mobileDeviceGroup,
		mobileDeviceInvitation,
		mobileDeviceProvisioningProfile,
		full("netboot_server", "/netbootservers"),
		full("network_segment", "/networksegments"),
		osxConfigurationProfile,
		pkg,
		patch,
		peripheral,
		peripheralType,
		policy,
		full("printer", "/printers"),
		full("removable_mac_address", "/removablemacaddresses"),
		restrictedSoftware,
		savedSearch,
		script,
		full("site", "/sites"),
		singleton("smtp_server", "/smtpserver"),
		full("software_update_server", "/softwareupdateservers"),
		full("user", "/users"),
		full("user_extension_attribute", "/userextensionattributes"),
		full("user_group", "/usergroups"),
		vppAccount,
	}
}
