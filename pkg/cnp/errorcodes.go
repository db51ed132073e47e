package cnp

// ErrorCode is a status code reported by Asap3GetLastError.
type ErrorCode uint16

const (
	AEC_CMD_NOT_SUP                ErrorCode = 1  // Command not supported
	AEC_INTERFACE_NOTSUPPORTED     ErrorCode = 2  // Interface type not supported
	AEC_CREATE_MEM_MAPPED_FILE     ErrorCode = 3  // Error creating memory mapped file
	AEC_WRITE_CMD                  ErrorCode = 4  // Error writing data to memory mapped file
	AEC_READ_RESPONSE              ErrorCode = 5  // Error reading response from memory mapped file
	AEC_ASAP2_FILE_NOT_FOUND       ErrorCode = 6  // ASAP2 file not found
	AEC_INVALID_MODULE_HDL         ErrorCode = 7  // Invalid module handle
	AEC_ERR_OPEN_FILE              ErrorCode = 8  // Open file error
	AEC_UNKNOWN_OBJECT             ErrorCode = 9  // Unknown object name
	AEC_NO_DATABASE                ErrorCode = 10 // No database assigned
	AEC_PAR_SIZE_OVERFLOW          ErrorCode = 11 // Parameter 'size' too large
	AEC_NOT_WRITE_ACCESS           ErrorCode = 12 // Object has no write access
	AEC_OBJECT_TYPE_DOESNT_MATCH   ErrorCode = 13 // Object type doens't match
	AEC_NO_TASKS_OVERFLOW          ErrorCode = 14 // Number of tasks overflow
	AEC_CCP_RESPONSE_SIZE_INVALID  ErrorCode = 15 // Invalid CCP response size
	AEC_TIMEOUT_RESPONSE           ErrorCode = 16 // Timeout reading response from memory mapped file
	AEC_NO_VALUES_SAMPLED          ErrorCode = 17 // FIFO doesn't contain any values
	AEC_ACQ_CHNL_OVERRUN           ErrorCode = 18 // Too many channels defined relating to single raster
	AEC_NO_RASTER_OVERFLOW         ErrorCode = 19 // Too many rasters selected for data acquisition (overflow of internal parameter)
	AEC_CANAPE_CREATE_PROC_FAILED  ErrorCode = 20 // CreateProcess of CANape failed
	AEC_EXIT_DENIED_WHILE_ACQU     ErrorCode = 21 // Asap3Exit denied because data acquistion is still running
	AEC_WRITE_DATA_FAILED          ErrorCode = 22 // Error writing data to application RAM
	AEC_NO_RESPONSE_FROM_ECU       ErrorCode = 23 // No response from ECU (attach Asap2 failed)
	AEC_ACQUIS_ALREADY_RUNNING     ErrorCode = 24 // Asap3StartDataAcquisition denied: data acquisition already running
	AEC_ACQUIS_NOT_STARTED         ErrorCode = 25 // Asap3StopAcquisition denied: data acquisition not started
	AEC_VALUES_NOT_ACCESSIBLE      ErrorCode = 26 // If cache is disabled, values aren't accessible while acquisition is running
	AEC_NO_AXIS_PTS_NOT_VALID      ErrorCode = 27 // Invalid number of axis points (see following note).
	AEC_SCRIPT_CMD_TO_LARGE        ErrorCode = 28 // Script command size overflow
	AEC_SCRIPT_CMD_INVALID         ErrorCode = 29 // Invalid/unknown script command
	AEC_UNKNOWN_MODULE_NAME        ErrorCode = 30 // Unknown module
	AEC_FIFO_INTERNAL_ERROR        ErrorCode = 31 // CANape internal error concerning FIFO management
	AEC_VERSION_ERROR              ErrorCode = 32 // Access denied: incompatible CANape version
	AEC_ILLEGAL_DRIVER             ErrorCode = 33 // Illegal driver type
	AEC_CALOBJ_READ_FAILED         ErrorCode = 34 // Read of calibration object failed
	AEC_ACQ_STP_INIT_FAILED        ErrorCode = 35 // Initialization of data acquisition failed
	AEC_ACQ_STP_PROC_FAILED        ErrorCode = 36 // Data acquisition failed
	AEC_ACQ_STP_OVERFLOW           ErrorCode = 37 // Buffer overflow at data acquisition
	AEC_ACQ_STP_TIME_OVER          ErrorCode = 38 // Data acquisition stopped because selected time is elapsed
	AEC_NOSERVER_ERRCODE           ErrorCode = 40 // No Server application available
	AEC_ERR_OPEN_DATADESCFILE      ErrorCode = 41 // Unable to open data description file, may be nonexistent
	AEC_ERR_OPEN_DATAVERSFILE      ErrorCode = 42 // Unable to open a data file
	AEC_TO_MUCH_DISPLAYS_OPEN      ErrorCode = 43 // Maximal count of displays are opened
	AEC_INTERNAL_CANAPE_ERROR      ErrorCode = 44 // Attempt to create a module failed
	AEC_CANT_OPEN_DISPLAY          ErrorCode = 45 // Unable to open a display
	AEC_ERR_NO_PATTERNFILE_DEFINED ErrorCode = 46 // No parameter filename
	AEC_ERR_OPEN_PATTERNFILE       ErrorCode = 47 // Unable to open patternfile
	AEC_ERR_CANT_RELEASE_MUTEX     ErrorCode = 48 // Release of a mutex failed
	AEC_WRONG_CANAPE_VERSION       ErrorCode = 49 // Canape does not fit to dll version
	AEC_TCP_SERV_CONNECT_FAILED    ErrorCode = 50 // Connect to ASAP3 server failed
	AEC_TCP_MISSING_CFG            ErrorCode = 51 // Missing CANape TCP Server configuration
	AEC_TCP_SERV_NOT_CONNECTED     ErrorCode = 52 // Connection between ASAP3 Server and TCP CANapeAPI is not active
	AEC_TCP_EXIT_NOTCLOSED         ErrorCode = 53
	AEC_FIFO_ALREADY_INIT          ErrorCode = 54 // The FIFO Memory was already created. Close all conections to reconfigure.
	AEC_ILLEGAL_OPERATION          ErrorCode = 55 // It is not possible to operate this command
	AEC_WRONG_TYPE                 ErrorCode = 56 // The given type is not supported
	AEC_NO_CANAPE_LICENSE          ErrorCode = 57 // CANape is not licensed
	AEC_REG_OPEN_KEY_FAILED        ErrorCode = 58 // Key "HKEY_LOCAL_MACHINE\\SOFTWARE\\VECTOR\\CANape" missing at Windows Registry, maybe CANape setup has not been correctly performed
	AEC_REG_QUERY_VALUE_FAILED     ErrorCode = 59 // Value "Path" missing at Windows Registry, maybe CANape setup has not been correctly performed
	AEC_WORKDIR_ACCESS_FAILED      ErrorCode = 60 // CreateProcess of CANape failed: working directory not accessible/exists
	AEC_INIT_COM_FAILED            ErrorCode = 61 // Internal error: Asap3InitCom() failed
	AEC_INIT_CMD_FAILED            ErrorCode = 62 // Negative Response from CANape: Init() failed
	AEC_CANAPE_INVALID_PRG_PATH    ErrorCode = 63 // CreateProcess of CANape failed: programme directory not accessible/nonexistent
	AEC_INVALID_ASAP3_HDL          ErrorCode = 64 // Invalid asap3 handle
	AEC_LOADING_FILE               ErrorCode = 65 // File loading failed
	AEC_SAVING_FILE                ErrorCode = 66 // File saving failed
	AEC_UPLOAD                     ErrorCode = 67 // Upload failed
	AEC_WRITE_VALUE_ERROR          ErrorCode = 68 // Value could not be written
	AEC_TMTF_NOT_FINSHED           ErrorCode = 69 // Other file transmission in process
	AEC_TMTF_SEQUENCE_ERROR        ErrorCode = 70 // TransmitFile: sequence error (internal error)
	AEC_TDBO_TYPE_ERROR            ErrorCode = 71 // TransmitFile: sequence error (internal error)
	AEC_EXECUTE_SERVICE_ERROR      ErrorCode = 72 // Asap3_CCP_Request failed
	AEC_INVALID_DRIVERTYPE         ErrorCode = 73 // Invalid drivertype for this operation
	AEC_DIAG_INVALID_DRIVERTYPE    ErrorCode = 74 // Invalid drivertype for for diagnostic operations
	AEC_DIAG_INVALID_BUSMESSAGE    ErrorCode = 75 // Invalid BusMessage
	AEC_DIAG_INVALID_VARIANT       ErrorCode = 76 // Invalid Variant
	AEC_DIAG_INVALID_DIAGSERVICE   ErrorCode = 77 // Invalid or unknown request
	AEC_DIAG_ERR_EXECUTE_SERVICE   ErrorCode = 78 // Error while sending service
	AEC_DIAG_INVALID_PARAMS        ErrorCode = 79 // Invalid or unknown request
	AEC_DIAG_UNKNOWN_PARAM_NAME    ErrorCode = 80 // Invalid or unknown parameter name
	AEC_DIAG_EXCEPTION_ERROR       ErrorCode = 81 // Error while creating a request
	AEC_DIAG_INVALID_RESPONSE      ErrorCode = 82 // Error response cannot be handled
	AEC_DIAG_UNKNOWN_PARAM_TYPE    ErrorCode = 83 // Unknown parameter type
	AEC_DIAG_NO_INFO_AVAILABLE     ErrorCode = 84 // Currently no information available
	AEC_DIAG_UNKNOWN_RESPHANDLE    ErrorCode = 85 // Unknown response handle
	ACE_DIAG_WRONG_SERVICE_STATE   ErrorCode = 86 // The current request is in the wrong state for this operation
	AEC_DIAG_INVALID_INDEX_SIZE    ErrorCode = 87 // Complex index does not match
	AEC_DIAG_INVALID_RESPONSETYPE  ErrorCode = 88 // Invalid response type
	AEC_FLASH_INVALID_MANAGER      ErrorCode = 89 // Flash manager invalid
	AEC_FLASH_OBJ_OUT_OF_RANGE     ErrorCode = 90 // Flash object out of range
	AEC_FLASH_MANAGER_ERROR        ErrorCode = 91 // Flash manager error
	AEC_FLASH_ALLREADY_RUNNING     ErrorCode = 92
	AEC_FLASH_INVALID_APPNAME      ErrorCode = 93  // Invalid application name
	AEC_FUNCTION_NOT_SUPPORTED     ErrorCode = 94  // This function is not supported in this program version
	AEC_LICENSE_NOT_FOUND          ErrorCode = 95  // License file not found
	AEC_RECORDER_ALLREADY_EXISTS   ErrorCode = 96  // Recorder already exists
	AEC_RECORDER_NOT_FOUND         ErrorCode = 97  // Recorder does not exists
	AEC_RECORDER_INDEX_OUTOFRANGE  ErrorCode = 98  // Recorder index out of range
	AEC_REMOVE_RECORDER_ERR        ErrorCode = 99  // Error deleting Recorder
	AEC_INVALID_PARAMETER          ErrorCode = 100 // Wrong parameter value
	AEC_ERROR_CREATERECORDER       ErrorCode = 101 // Error creating recorder
	AEC_ERROR_SETRECFILENAME       ErrorCode = 102 // Error creating Filename
	AEC_ERROR_INVALID_TASKID       ErrorCode = 103 // Invalid task id for the given Measurement object
	AEC_DIAG_PARAM_SETERROR        ErrorCode = 104 // Parameter can not be set
	AEC_CNFG_WRONG_MODE            ErrorCode = 105 // command not supported in current mode
	AEC_CNFG_FILE_NOT_FOUND        ErrorCode = 106 // Specified File is Not Found
	AEC_CNFG_FILE_INVALID          ErrorCode = 107 // File belongs to a different project
	AEC_INVALID_SCR_HANDLE         ErrorCode = 108 // Invalid script handle
	AEC_REMOVE_SCR_HANDLE          ErrorCode = 109 // Unable to remove Script
	AEC_ERROR_DECALRE_SCR          ErrorCode = 110 // Unable to declare script
	AEC_ERROR_RESUME_SUPPORTED     ErrorCode = 111 // The requested module doesn't support resume mode
	AEC_UNDEFINED_CHANNEL          ErrorCode = 112 // undefined channel parameter
	AEC_ERR_DRIVER_CONFIG          ErrorCode = 113 // No configuration for this drivertype available
	AEC_ERR_DCB_EXPORT             ErrorCode = 114 // Error creating DBC export file
	ACE_NOT_AVAILABLE_WHILE_ACQ    ErrorCode = 115 // Function not available while a measurement is running
	ACE_NOT_MISSING_LICENSE        ErrorCode = 116 // ILinkRT Recorder available only with option MCD3
	ACE_EVENT_ALLREADY_REGISERED   ErrorCode = 117 // Callback Event already registered
	AEC_OBJECT_ALLREADY_DEFINED    ErrorCode = 118 // Measurement object already defined
	AEC_CAL_NOT_ALLOWED            ErrorCode = 119 // Calibration not allowed if online calibration is switched off
	AEC_DIAG_UNDEFINED_JOB         ErrorCode = 120 // Unknown service
	AEC_ERROR_MODAL_DIALOG         ErrorCode = 121 // Prohibited command while a modal dialog is prompted
	AEC_ERROR_CHANNEL_ASSIGNMENT   ErrorCode = 122 // hardware channel assignment
	AEC_ERROR_STRUCTURE_OBJECT     ErrorCode = 123 // Measurement object is already instantiated in a structure object
	AEC_NETWORK_NOT_FOUND          ErrorCode = 124 // Network not found or not available
	AEC_ERROR_LOADING_LABELLIST    ErrorCode = 125 // Error loading label list
	AEC_ERROR_CONV_FILE_ACCESS     ErrorCode = 126 // Currently the converter has no file access - please try it later
	AEC_ERROR_COMPLEX_RESPONSES    ErrorCode = 127 // Function not available for complex responses
	AEC_ERROR_INIPATH              ErrorCode = 128 // Function could not determine the project directory
	AEC_USUPPORTED_INTERFACE_ID    ErrorCode = 129 // Interface name is not supported with this drivertype
	AEC_INSUFFICENT_BUFFERSIZE     ErrorCode = 130 // Buffer size too small
	AEC_PATCHENTRY_NOT_FOUND       ErrorCode = 131 // Patch section not found
	AEC_PATCHSECTION_NOT_FOUND     ErrorCode = 132 // Patch entry not found
	AEC_SEC_MANAGER_ERROR          ErrorCode = 133 // Security manager access error
	ACE_CHANNEL_OPTIMIZED          ErrorCode = 134 // Measurement channel is optimized because it's parent will already be measured
	ACE_ERR_PROFILE_ID             ErrorCode = 135 // Profile not registered
	ACE_ERR_UNSUPPORTED_TYPE       ErrorCode = 136 // Unsupported data type for measurement
	ACE_ERR_DATA_SIZE              ErrorCode = 137 // Datasize of object too large
	AEC_CALOBJ_INVALID_VALUE       ErrorCode = 138 // Invalid value - object can't be read
)

var errorCodeNames = map[ErrorCode]string{
	AEC_CMD_NOT_SUP:                "AEC_CMD_NOT_SUP",
	AEC_INTERFACE_NOTSUPPORTED:     "AEC_INTERFACE_NOTSUPPORTED",
	AEC_CREATE_MEM_MAPPED_FILE:     "AEC_CREATE_MEM_MAPPED_FILE",
	AEC_WRITE_CMD:                  "AEC_WRITE_CMD",
	AEC_READ_RESPONSE:              "AEC_READ_RESPONSE",
	AEC_ASAP2_FILE_NOT_FOUND:       "AEC_ASAP2_FILE_NOT_FOUND",
	AEC_INVALID_MODULE_HDL:         "AEC_INVALID_MODULE_HDL",
	AEC_ERR_OPEN_FILE:              "AEC_ERR_OPEN_FILE",
	AEC_UNKNOWN_OBJECT:             "AEC_UNKNOWN_OBJECT",
	AEC_NO_DATABASE:                "AEC_NO_DATABASE",
	AEC_PAR_SIZE_OVERFLOW:          "AEC_PAR_SIZE_OVERFLOW",
	AEC_NOT_WRITE_ACCESS:           "AEC_NOT_WRITE_ACCESS",
	AEC_OBJECT_TYPE_DOESNT_MATCH:   "AEC_OBJECT_TYPE_DOESNT_MATCH",
	AEC_NO_TASKS_OVERFLOW:          "AEC_NO_TASKS_OVERFLOW",
	AEC_CCP_RESPONSE_SIZE_INVALID:  "AEC_CCP_RESPONSE_SIZE_INVALID",
	AEC_TIMEOUT_RESPONSE:           "AEC_TIMEOUT_RESPONSE",
	AEC_NO_VALUES_SAMPLED:          "AEC_NO_VALUES_SAMPLED",
	AEC_ACQ_CHNL_OVERRUN:           "AEC_ACQ_CHNL_OVERRUN",
	AEC_NO_RASTER_OVERFLOW:         "AEC_NO_RASTER_OVERFLOW",
	AEC_CANAPE_CREATE_PROC_FAILED:  "AEC_CANAPE_CREATE_PROC_FAILED",
	AEC_EXIT_DENIED_WHILE_ACQU:     "AEC_EXIT_DENIED_WHILE_ACQU",
	AEC_WRITE_DATA_FAILED:          "AEC_WRITE_DATA_FAILED",
	AEC_NO_RESPONSE_FROM_ECU:       "AEC_NO_RESPONSE_FROM_ECU",
	AEC_ACQUIS_ALREADY_RUNNING:     "AEC_ACQUIS_ALREADY_RUNNING",
	AEC_ACQUIS_NOT_STARTED:         "AEC_ACQUIS_NOT_STARTED",
	AEC_VALUES_NOT_ACCESSIBLE:      "AEC_VALUES_NOT_ACCESSIBLE",
	AEC_NO_AXIS_PTS_NOT_VALID:      "AEC_NO_AXIS_PTS_NOT_VALID",
	AEC_SCRIPT_CMD_TO_LARGE:        "AEC_SCRIPT_CMD_TO_LARGE",
	AEC_SCRIPT_CMD_INVALID:         "AEC_SCRIPT_CMD_INVALID",
	AEC_UNKNOWN_MODULE_NAME:        "AEC_UNKNOWN_MODULE_NAME",
	AEC_FIFO_INTERNAL_ERROR:        "AEC_FIFO_INTERNAL_ERROR",
	AEC_VERSION_ERROR:              "AEC_VERSION_ERROR",
	AEC_ILLEGAL_DRIVER:             "AEC_ILLEGAL_DRIVER",
	AEC_CALOBJ_READ_FAILED:         "AEC_CALOBJ_READ_FAILED",
	AEC_ACQ_STP_INIT_FAILED:        "AEC_ACQ_STP_INIT_FAILED",
	AEC_ACQ_STP_PROC_FAILED:        "AEC_ACQ_STP_PROC_FAILED",
	AEC_ACQ_STP_OVERFLOW:           "AEC_ACQ_STP_OVERFLOW",
	AEC_ACQ_STP_TIME_OVER:          "AEC_ACQ_STP_TIME_OVER",
	AEC_NOSERVER_ERRCODE:           "AEC_NOSERVER_ERRCODE",
	AEC_ERR_OPEN_DATADESCFILE:      "AEC_ERR_OPEN_DATADESCFILE",
	AEC_ERR_OPEN_DATAVERSFILE:      "AEC_ERR_OPEN_DATAVERSFILE",
	AEC_TO_MUCH_DISPLAYS_OPEN:      "AEC_TO_MUCH_DISPLAYS_OPEN",
	AEC_INTERNAL_CANAPE_ERROR:      "AEC_INTERNAL_CANAPE_ERROR",
	AEC_CANT_OPEN_DISPLAY:          "AEC_CANT_OPEN_DISPLAY",
	AEC_ERR_NO_PATTERNFILE_DEFINED: "AEC_ERR_NO_PATTERNFILE_DEFINED",
	AEC_ERR_OPEN_PATTERNFILE:       "AEC_ERR_OPEN_PATTERNFILE",
	AEC_ERR_CANT_RELEASE_MUTEX:     "AEC_ERR_CANT_RELEASE_MUTEX",
	AEC_WRONG_CANAPE_VERSION:       "AEC_WRONG_CANAPE_VERSION",
	AEC_TCP_SERV_CONNECT_FAILED:    "AEC_TCP_SERV_CONNECT_FAILED",
	AEC_TCP_MISSING_CFG:            "AEC_TCP_MISSING_CFG",
	AEC_TCP_SERV_NOT_CONNECTED:     "AEC_TCP_SERV_NOT_CONNECTED",
	AEC_TCP_EXIT_NOTCLOSED:         "AEC_TCP_EXIT_NOTCLOSED",
	AEC_FIFO_ALREADY_INIT:          "AEC_FIFO_ALREADY_INIT",
	AEC_ILLEGAL_OPERATION:          "AEC_ILLEGAL_OPERATION",
	AEC_WRONG_TYPE:                 "AEC_WRONG_TYPE",
	AEC_NO_CANAPE_LICENSE:          "AEC_NO_CANAPE_LICENSE",
	AEC_REG_OPEN_KEY_FAILED:        "AEC_REG_OPEN_KEY_FAILED",
	AEC_REG_QUERY_VALUE_FAILED:     "AEC_REG_QUERY_VALUE_FAILED",
	AEC_WORKDIR_ACCESS_FAILED:      "AEC_WORKDIR_ACCESS_FAILED",
	AEC_INIT_COM_FAILED:            "AEC_INIT_COM_FAILED",
	AEC_INIT_CMD_FAILED:            "AEC_INIT_CMD_FAILED",
	AEC_CANAPE_INVALID_PRG_PATH:    "AEC_CANAPE_INVALID_PRG_PATH",
	AEC_INVALID_ASAP3_HDL:          "AEC_INVALID_ASAP3_HDL",
	AEC_LOADING_FILE:               "AEC_LOADING_FILE",
	AEC_SAVING_FILE:                "AEC_SAVING_FILE",
	AEC_UPLOAD:                     "AEC_UPLOAD",
	AEC_WRITE_VALUE_ERROR:          "AEC_WRITE_VALUE_ERROR",
	AEC_TMTF_NOT_FINSHED:           "AEC_TMTF_NOT_FINSHED",
	AEC_TMTF_SEQUENCE_ERROR:        "AEC_TMTF_SEQUENCE_ERROR",
	AEC_TDBO_TYPE_ERROR:            "AEC_TDBO_TYPE_ERROR",
	AEC_EXECUTE_SERVICE_ERROR:      "AEC_EXECUTE_SERVICE_ERROR",
	AEC_INVALID_DRIVERTYPE:         "AEC_INVALID_DRIVERTYPE",
	AEC_DIAG_INVALID_DRIVERTYPE:    "AEC_DIAG_INVALID_DRIVERTYPE",
	AEC_DIAG_INVALID_BUSMESSAGE:    "AEC_DIAG_INVALID_BUSMESSAGE",
	AEC_DIAG_INVALID_VARIANT:       "AEC_DIAG_INVALID_VARIANT",
	AEC_DIAG_INVALID_DIAGSERVICE:   "AEC_DIAG_INVALID_DIAGSERVICE",
	AEC_DIAG_ERR_EXECUTE_SERVICE:   "AEC_DIAG_ERR_EXECUTE_SERVICE",
	AEC_DIAG_INVALID_PARAMS:        "AEC_DIAG_INVALID_PARAMS",
	AEC_DIAG_UNKNOWN_PARAM_NAME:    "AEC_DIAG_UNKNOWN_PARAM_NAME",
	AEC_DIAG_EXCEPTION_ERROR:       "AEC_DIAG_EXCEPTION_ERROR",
	AEC_DIAG_INVALID_RESPONSE:      "AEC_DIAG_INVALID_RESPONSE",
	AEC_DIAG_UNKNOWN_PARAM_TYPE:    "AEC_DIAG_UNKNOWN_PARAM_TYPE",
	AEC_DIAG_NO_INFO_AVAILABLE:     "AEC_DIAG_NO_INFO_AVAILABLE",
	AEC_DIAG_UNKNOWN_RESPHANDLE:    "AEC_DIAG_UNKNOWN_RESPHANDLE",
	ACE_DIAG_WRONG_SERVICE_STATE:   "ACE_DIAG_WRONG_SERVICE_STATE",
	AEC_DIAG_INVALID_INDEX_SIZE:    "AEC_DIAG_INVALID_INDEX_SIZE",
	AEC_DIAG_INVALID_RESPONSETYPE:  "AEC_DIAG_INVALID_RESPONSETYPE",
	AEC_FLASH_INVALID_MANAGER:      "AEC_FLASH_INVALID_MANAGER",
	AEC_FLASH_OBJ_OUT_OF_RANGE:     "AEC_FLASH_OBJ_OUT_OF_RANGE",
	AEC_FLASH_MANAGER_ERROR:        "AEC_FLASH_MANAGER_ERROR",
	AEC_FLASH_ALLREADY_RUNNING:     "AEC_FLASH_ALLREADY_RUNNING",
	AEC_FLASH_INVALID_APPNAME:      "AEC_FLASH_INVALID_APPNAME",
	AEC_FUNCTION_NOT_SUPPORTED:     "AEC_FUNCTION_NOT_SUPPORTED",
	AEC_LICENSE_NOT_FOUND:          "AEC_LICENSE_NOT_FOUND",
	AEC_RECORDER_ALLREADY_EXISTS:   "AEC_RECORDER_ALLREADY_EXISTS",
	AEC_RECORDER_NOT_FOUND:         "AEC_RECORDER_NOT_FOUND",
	AEC_RECORDER_INDEX_OUTOFRANGE:  "AEC_RECORDER_INDEX_OUTOFRANGE",
	AEC_REMOVE_RECORDER_ERR:        "AEC_REMOVE_RECORDER_ERR",
	AEC_INVALID_PARAMETER:          "AEC_INVALID_PARAMETER",
	AEC_ERROR_CREATERECORDER:       "AEC_ERROR_CREATERECORDER",
	AEC_ERROR_SETRECFILENAME:       "AEC_ERROR_SETRECFILENAME",
	AEC_ERROR_INVALID_TASKID:       "AEC_ERROR_INVALID_TASKID",
	AEC_DIAG_PARAM_SETERROR:        "AEC_DIAG_PARAM_SETERROR",
	AEC_CNFG_WRONG_MODE:            "AEC_CNFG_WRONG_MODE",
	AEC_CNFG_FILE_NOT_FOUND:        "AEC_CNFG_FILE_NOT_FOUND",
	AEC_CNFG_FILE_INVALID:          "AEC_CNFG_FILE_INVALID",
	AEC_INVALID_SCR_HANDLE:         "AEC_INVALID_SCR_HANDLE",
	AEC_REMOVE_SCR_HANDLE:          "AEC_REMOVE_SCR_HANDLE",
	AEC_ERROR_DECALRE_SCR:          "AEC_ERROR_DECALRE_SCR",
	AEC_ERROR_RESUME_SUPPORTED:     "AEC_ERROR_RESUME_SUPPORTED",
	AEC_UNDEFINED_CHANNEL:          "AEC_UNDEFINED_CHANNEL",
	AEC_ERR_DRIVER_CONFIG:          "AEC_ERR_DRIVER_CONFIG",
	AEC_ERR_DCB_EXPORT:             "AEC_ERR_DCB_EXPORT",
	ACE_NOT_AVAILABLE_WHILE_ACQ:    "ACE_NOT_AVAILABLE_WHILE_ACQ",
	ACE_NOT_MISSING_LICENSE:        "ACE_NOT_MISSING_LICENSE",
	ACE_EVENT_ALLREADY_REGISERED:   "ACE_EVENT_ALLREADY_REGISERED",
	AEC_OBJECT_ALLREADY_DEFINED:    "AEC_OBJECT_ALLREADY_DEFINED",
	AEC_CAL_NOT_ALLOWED:            "AEC_CAL_NOT_ALLOWED",
	AEC_DIAG_UNDEFINED_JOB:         "AEC_DIAG_UNDEFINED_JOB",
	AEC_ERROR_MODAL_DIALOG:         "AEC_ERROR_MODAL_DIALOG",
	AEC_ERROR_CHANNEL_ASSIGNMENT:   "AEC_ERROR_CHANNEL_ASSIGNMENT",
	AEC_ERROR_STRUCTURE_OBJECT:     "AEC_ERROR_STRUCTURE_OBJECT",
	AEC_NETWORK_NOT_FOUND:          "AEC_NETWORK_NOT_FOUND",
	AEC_ERROR_LOADING_LABELLIST:    "AEC_ERROR_LOADING_LABELLIST",
	AEC_ERROR_CONV_FILE_ACCESS:     "AEC_ERROR_CONV_FILE_ACCESS",
	AEC_ERROR_COMPLEX_RESPONSES:    "AEC_ERROR_COMPLEX_RESPONSES",
	AEC_ERROR_INIPATH:              "AEC_ERROR_INIPATH",
	AEC_USUPPORTED_INTERFACE_ID:    "AEC_USUPPORTED_INTERFACE_ID",
	AEC_INSUFFICENT_BUFFERSIZE:     "AEC_INSUFFICENT_BUFFERSIZE",
	AEC_PATCHENTRY_NOT_FOUND:       "AEC_PATCHENTRY_NOT_FOUND",
	AEC_PATCHSECTION_NOT_FOUND:     "AEC_PATCHSECTION_NOT_FOUND",
	AEC_SEC_MANAGER_ERROR:          "AEC_SEC_MANAGER_ERROR",
	ACE_CHANNEL_OPTIMIZED:          "ACE_CHANNEL_OPTIMIZED",
	ACE_ERR_PROFILE_ID:             "ACE_ERR_PROFILE_ID",
	ACE_ERR_UNSUPPORTED_TYPE:       "ACE_ERR_UNSUPPORTED_TYPE",
	ACE_ERR_DATA_SIZE:              "ACE_ERR_DATA_SIZE",
	AEC_CALOBJ_INVALID_VALUE:       "AEC_CALOBJ_INVALID_VALUE",
}

var errorCodeTexts = map[ErrorCode]string{
	AEC_CMD_NOT_SUP:                "Command not supported",
	AEC_INTERFACE_NOTSUPPORTED:     "Interface type not supported",
	AEC_CREATE_MEM_MAPPED_FILE:     "Error creating memory mapped file",
	AEC_WRITE_CMD:                  "Error writing data to memory mapped file",
	AEC_READ_RESPONSE:              "Error reading response from memory mapped file",
	AEC_ASAP2_FILE_NOT_FOUND:       "ASAP2 file not found",
	AEC_INVALID_MODULE_HDL:         "Invalid module handle",
	AEC_ERR_OPEN_FILE:              "Open file error",
	AEC_UNKNOWN_OBJECT:             "Unknown object name",
	AEC_NO_DATABASE:                "No database assigned",
	AEC_PAR_SIZE_OVERFLOW:          "Parameter 'size' too large",
	AEC_NOT_WRITE_ACCESS:           "Object has no write access",
	AEC_OBJECT_TYPE_DOESNT_MATCH:   "Object type doens't match",
	AEC_NO_TASKS_OVERFLOW:          "Number of tasks overflow",
	AEC_CCP_RESPONSE_SIZE_INVALID:  "Invalid CCP response size",
	AEC_TIMEOUT_RESPONSE:           "Timeout reading response from memory mapped file",
	AEC_NO_VALUES_SAMPLED:          "FIFO doesn't contain any values",
	AEC_ACQ_CHNL_OVERRUN:           "Too many channels defined relating to single raster",
	AEC_NO_RASTER_OVERFLOW:         "Too many rasters selected for data acquisition (overflow of internal parameter)",
	AEC_CANAPE_CREATE_PROC_FAILED:  "CreateProcess of CANape failed",
	AEC_EXIT_DENIED_WHILE_ACQU:     "Asap3Exit denied because data acquistion is still running",
	AEC_WRITE_DATA_FAILED:          "Error writing data to application RAM",
	AEC_NO_RESPONSE_FROM_ECU:       "No response from ECU (attach Asap2 failed)",
	AEC_ACQUIS_ALREADY_RUNNING:     "Asap3StartDataAcquisition denied: data acquisition already running",
	AEC_ACQUIS_NOT_STARTED:         "Asap3StopAcquisition denied: data acquisition not started",
	AEC_VALUES_NOT_ACCESSIBLE:      "If cache is disabled, values aren't accessible while acquisition is running",
	AEC_NO_AXIS_PTS_NOT_VALID:      "Invalid number of axis points (see following note).",
	AEC_SCRIPT_CMD_TO_LARGE:        "Script command size overflow",
	AEC_SCRIPT_CMD_INVALID:         "Invalid/unknown script command",
	AEC_UNKNOWN_MODULE_NAME:        "Unknown module",
	AEC_FIFO_INTERNAL_ERROR:        "CANape internal error concerning FIFO management",
	AEC_VERSION_ERROR:              "Access denied: incompatible CANape version",
	AEC_ILLEGAL_DRIVER:             "Illegal driver type",
	AEC_CALOBJ_READ_FAILED:         "Read of calibration object failed",
	AEC_ACQ_STP_INIT_FAILED:        "Initialization of data acquisition failed",
	AEC_ACQ_STP_PROC_FAILED:        "Data acquisition failed",
	AEC_ACQ_STP_OVERFLOW:           "Buffer overflow at data acquisition",
	AEC_ACQ_STP_TIME_OVER:          "Data acquisition stopped because selected time is elapsed",
	AEC_NOSERVER_ERRCODE:           "No Server application available",
	AEC_ERR_OPEN_DATADESCFILE:      "Unable to open data description file, may be nonexistent",
	AEC_ERR_OPEN_DATAVERSFILE:      "Unable to open a data file",
	AEC_TO_MUCH_DISPLAYS_OPEN:      "Maximal count of displays are opened",
	AEC_INTERNAL_CANAPE_ERROR:      "Attempt to create a module failed",
	AEC_CANT_OPEN_DISPLAY:          "Unable to open a display",
	AEC_ERR_NO_PATTERNFILE_DEFINED: "No parameter filename",
	AEC_ERR_OPEN_PATTERNFILE:       "Unable to open patternfile",
	AEC_ERR_CANT_RELEASE_MUTEX:     "Release of a mutex failed",
	AEC_WRONG_CANAPE_VERSION:       "Canape does not fit to dll version",
	AEC_TCP_SERV_CONNECT_FAILED:    "Connect to ASAP3 server failed",
	AEC_TCP_MISSING_CFG:            "Missing CANape TCP Server configuration",
	AEC_TCP_SERV_NOT_CONNECTED:     "Connection between ASAP3 Server and TCP CANapeAPI is not active",
	AEC_TCP_EXIT_NOTCLOSED:         "AEC_TCP_EXIT_NOTCLOSED",
	AEC_FIFO_ALREADY_INIT:          "The FIFO Memory was already created. Close all conections to reconfigure.",
	AEC_ILLEGAL_OPERATION:          "It is not possible to operate this command",
	AEC_WRONG_TYPE:                 "The given type is not supported",
	AEC_NO_CANAPE_LICENSE:          "CANape is not licensed",
	AEC_REG_OPEN_KEY_FAILED:        "Key \"HKEY_LOCAL_MACHINE\\SOFTWARE\\VECTOR\\CANape\" missing at Windows Registry, maybe CANape setup has not been correctly performed",
	AEC_REG_QUERY_VALUE_FAILED:     "Value \"Path\" missing at Windows Registry, maybe CANape setup has not been correctly performed",
	AEC_WORKDIR_ACCESS_FAILED:      "CreateProcess of CANape failed: working directory not accessible/exists",
	AEC_INIT_COM_FAILED:            "Internal error: Asap3InitCom() failed",
	AEC_INIT_CMD_FAILED:            "Negative Response from CANape: Init() failed",
	AEC_CANAPE_INVALID_PRG_PATH:    "CreateProcess of CANape failed: programme directory not accessible/nonexistent",
	AEC_INVALID_ASAP3_HDL:          "Invalid asap3 handle",
	AEC_LOADING_FILE:               "File loading failed",
	AEC_SAVING_FILE:                "File saving failed",
	AEC_UPLOAD:                     "Upload failed",
	AEC_WRITE_VALUE_ERROR:          "Value could not be written",
	AEC_TMTF_NOT_FINSHED:           "Other file transmission in process",
	AEC_TMTF_SEQUENCE_ERROR:        "TransmitFile: sequence error (internal error)",
	AEC_TDBO_TYPE_ERROR:            "TransmitFile: sequence error (internal error)",
	AEC_EXECUTE_SERVICE_ERROR:      "Asap3_CCP_Request failed",
	AEC_INVALID_DRIVERTYPE:         "Invalid drivertype for this operation",
	AEC_DIAG_INVALID_DRIVERTYPE:    "Invalid drivertype for for diagnostic operations",
	AEC_DIAG_INVALID_BUSMESSAGE:    "Invalid BusMessage",
	AEC_DIAG_INVALID_VARIANT:       "Invalid Variant",
	AEC_DIAG_INVALID_DIAGSERVICE:   "Invalid or unknown request",
	AEC_DIAG_ERR_EXECUTE_SERVICE:   "Error while sending service",
	AEC_DIAG_INVALID_PARAMS:        "Invalid or unknown request",
	AEC_DIAG_UNKNOWN_PARAM_NAME:    "Invalid or unknown parameter name",
	AEC_DIAG_EXCEPTION_ERROR:       "Error while creating a request",
	AEC_DIAG_INVALID_RESPONSE:      "Error response cannot be handled",
	AEC_DIAG_UNKNOWN_PARAM_TYPE:    "Unknown parameter type",
	AEC_DIAG_NO_INFO_AVAILABLE:     "Currently no information available",
	AEC_DIAG_UNKNOWN_RESPHANDLE:    "Unknown response handle",
	ACE_DIAG_WRONG_SERVICE_STATE:   "The current request is in the wrong state for this operation",
	AEC_DIAG_INVALID_INDEX_SIZE:    "Complex index does not match",
	AEC_DIAG_INVALID_RESPONSETYPE:  "Invalid response type",
	AEC_FLASH_INVALID_MANAGER:      "Flash manager invalid",
	AEC_FLASH_OBJ_OUT_OF_RANGE:     "Flash object out of range",
	AEC_FLASH_MANAGER_ERROR:        "Flash manager error",
	AEC_FLASH_ALLREADY_RUNNING:     "AEC_FLASH_ALLREADY_RUNNING",
	AEC_FLASH_INVALID_APPNAME:      "Invalid application name",
	AEC_FUNCTION_NOT_SUPPORTED:     "This function is not supported in this program version",
	AEC_LICENSE_NOT_FOUND:          "License file not found",
	AEC_RECORDER_ALLREADY_EXISTS:   "Recorder already exists",
	AEC_RECORDER_NOT_FOUND:         "Recorder does not exists",
	AEC_RECORDER_INDEX_OUTOFRANGE:  "Recorder index out of range",
	AEC_REMOVE_RECORDER_ERR:        "Error deleting Recorder",
	AEC_INVALID_PARAMETER:          "Wrong parameter value",
	AEC_ERROR_CREATERECORDER:       "Error creating recorder",
	AEC_ERROR_SETRECFILENAME:       "Error creating Filename",
	AEC_ERROR_INVALID_TASKID:       "Invalid task id for the given Measurement object",
	AEC_DIAG_PARAM_SETERROR:        "Parameter can not be set",
	AEC_CNFG_WRONG_MODE:            "command not supported in current mode",
	AEC_CNFG_FILE_NOT_FOUND:        "Specified File is Not Found",
	AEC_CNFG_FILE_INVALID:          "File belongs to a different project",
	AEC_INVALID_SCR_HANDLE:         "Invalid script handle",
	AEC_REMOVE_SCR_HANDLE:          "Unable to remove Script",
	AEC_ERROR_DECALRE_SCR:          "Unable to declare script",
	AEC_ERROR_RESUME_SUPPORTED:     "The requested module doesn't support resume mode",
	AEC_UNDEFINED_CHANNEL:          "undefined channel parameter",
	AEC_ERR_DRIVER_CONFIG:          "No configuration for this drivertype available",
	AEC_ERR_DCB_EXPORT:             "Error creating DBC export file",
	ACE_NOT_AVAILABLE_WHILE_ACQ:    "Function not available while a measurement is running",
	ACE_NOT_MISSING_LICENSE:        "ILinkRT Recorder available only with option MCD3",
	ACE_EVENT_ALLREADY_REGISERED:   "Callback Event already registered",
	AEC_OBJECT_ALLREADY_DEFINED:    "Measurement object already defined",
	AEC_CAL_NOT_ALLOWED:            "Calibration not allowed if online calibration is switched off",
	AEC_DIAG_UNDEFINED_JOB:         "Unknown service",
	AEC_ERROR_MODAL_DIALOG:         "Prohibited command while a modal dialog is prompted",
	AEC_ERROR_CHANNEL_ASSIGNMENT:   "hardware channel assignment",
	AEC_ERROR_STRUCTURE_OBJECT:     "Measurement object is already instantiated in a structure object",
	AEC_NETWORK_NOT_FOUND:          "Network not found or not available",
	AEC_ERROR_LOADING_LABELLIST:    "Error loading label list",
	AEC_ERROR_CONV_FILE_ACCESS:     "Currently the converter has no file access - please try it later",
	AEC_ERROR_COMPLEX_RESPONSES:    "Function not available for complex responses",
	AEC_ERROR_INIPATH:              "Function could not determine the project directory",
	AEC_USUPPORTED_INTERFACE_ID:    "Interface name is not supported with this drivertype",
	AEC_INSUFFICENT_BUFFERSIZE:     "Buffer size too small",
	AEC_PATCHENTRY_NOT_FOUND:       "Patch section not found",
	AEC_PATCHSECTION_NOT_FOUND:     "Patch entry not found",
	AEC_SEC_MANAGER_ERROR:          "Security manager access error",
	ACE_CHANNEL_OPTIMIZED:          "Measurement channel is optimized because it's parent will already be measured",
	ACE_ERR_PROFILE_ID:             "Profile not registered",
	ACE_ERR_UNSUPPORTED_TYPE:       "Unsupported data type for measurement",
	ACE_ERR_DATA_SIZE:              "Datasize of object too large",
	AEC_CALOBJ_INVALID_VALUE:       "Invalid value - object can't be read",
}
